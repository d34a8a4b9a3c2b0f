// ndctl 是 ND 监测核心的命令行检查工具。
//
// 用法:
//
//	ndctl <命令> [子命令] [参数]
//
// 命令:
//
//	mac fmt <mac>        规范化输出 MAC 地址（小写冒号格式）
//	mac check <mac>      校验 MAC 地址并打印属性
//	config check <file>  加载插件配置并打印摘要
//	set report <file>    从 MAC 清单文件构建集合并打印诊断报告
//
// set report 的清单文件格式：每行一个规范冒号格式 MAC，空行与 #
// 开头的注释行被忽略。
//
// 退出码:
//
//	0: 成功
//	1: 校验未通过 / 执行失败
//	2: 参数错误（缺少参数、未知命令等）
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

func main() {
	root := &cli.Command{
		Name:     "ndctl",
		Usage:    "ND 监测核心检查工具",
		Commands: createCommands(),
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "ndctl:", err)
		os.Exit(1)
	}
}
