package macset

import (
	"fmt"
	"io"
)

// Report 向 w 输出人类可读的集合清单：一行标题加每条目一行规范
// 冒号格式 MAC。供诊断/摘要使用，构建在 [Set.Addrs] 快照之上。
func (s *Set[H]) Report(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w, "MAC set '%s' with %d entries:\n", title, s.Len()); err != nil {
		return fmt.Errorf("macset: write report: %w", err)
	}

	// 17 字节 MAC + 换行，单行缓冲复用
	buf := make([]byte, 0, 18)
	for addr := range s.Addrs() {
		buf = addr.AppendText(buf[:0])
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("macset: write report: %w", err)
		}
	}
	return nil
}
