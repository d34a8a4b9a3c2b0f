package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ndkit/pkg/nd/ndconf"
	"github.com/omeyang/ndkit/pkg/nd/ndstate"
	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createMacCommand(),
		createConfigCommand(),
		createSetCommand(),
	}
}

// createMacCommand 创建 mac 命令组。
func createMacCommand() *cli.Command {
	return &cli.Command{
		Name:  "mac",
		Usage: "MAC 地址工具",
		Commands: []*cli.Command{
			{
				Name:      "fmt",
				Usage:     "规范化输出 MAC 地址",
				ArgsUsage: "<mac>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return requireOneArg(cmd, func(arg string) error {
						return cmdMacFmt(os.Stdout, arg)
					})
				},
			},
			{
				Name:      "check",
				Usage:     "校验 MAC 地址并打印属性",
				ArgsUsage: "<mac>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return requireOneArg(cmd, func(arg string) error {
						return cmdMacCheck(os.Stdout, arg)
					})
				},
			},
		},
	}
}

// createConfigCommand 创建 config 命令组。
func createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "插件配置工具",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "加载配置并打印摘要",
				ArgsUsage: "<file>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return requireOneArg(cmd, func(arg string) error {
						return cmdConfigCheck(os.Stdout, arg)
					})
				},
			},
		},
	}
}

// createSetCommand 创建 set 命令组。
func createSetCommand() *cli.Command {
	return &cli.Command{
		Name:  "set",
		Usage: "MAC 集合工具",
		Commands: []*cli.Command{
			{
				Name:      "report",
				Usage:     "从 MAC 清单文件构建集合并打印诊断报告",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "title",
						Aliases: []string{"t"},
						Usage:   "报告标题",
						Value:   "mac list",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return requireOneArg(cmd, func(arg string) error {
						return cmdSetReport(os.Stdout, arg, cmd.String("title"))
					})
				},
			},
		},
	}
}

// requireOneArg 校验恰好一个位置参数后执行 fn。
func requireOneArg(cmd *cli.Command, fn func(arg string) error) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "ndctl: expected exactly one argument, got %d\n", len(args))
		return &exitError{code: 2}
	}
	return fn(args[0])
}

// cmdMacFmt 规范化输出一个 MAC 地址。
func cmdMacFmt(w io.Writer, text string) error {
	addr, err := xmac.Parse(text)
	if err != nil {
		fmt.Fprintf(w, "invalid: %v\n", err)
		return &exitError{code: 1}
	}
	fmt.Fprintln(w, addr)
	return nil
}

// cmdMacCheck 校验 MAC 地址并打印属性。
func cmdMacCheck(w io.Writer, text string) error {
	addr, err := xmac.Parse(text)
	if err != nil {
		fmt.Fprintf(w, "invalid: %v\n", err)
		return &exitError{code: 1}
	}
	fmt.Fprintf(w, "mac:       %s\n", addr)
	fmt.Fprintf(w, "unicast:   %t\n", addr.IsUnicast())
	fmt.Fprintf(w, "multicast: %t\n", addr.IsMulticast())
	fmt.Fprintf(w, "local:     %t\n", addr.IsLocallyAdministered())
	fmt.Fprintf(w, "special:   %t\n", addr.IsSpecial())
	return nil
}

// cmdConfigCheck 加载配置并打印摘要。
func cmdConfigCheck(w io.Writer, path string) error {
	cfg, err := ndconf.Load(path)
	if err != nil {
		fmt.Fprintf(w, "invalid: %v\n", err)
		return &exitError{code: 1}
	}
	fmt.Fprintf(w, "router_mac: %d entries\n", len(cfg.RouterMACs))
	fmt.Fprintf(w, "host_mac:   %d entries\n", len(cfg.HostMACs))
	prefixes := 0
	if cfg.Prefixes != nil {
		prefixes = len(cfg.Prefixes.Prefixes())
	}
	fmt.Fprintf(w, "net_prefix: %d entries\n", prefixes)
	fmt.Fprintf(w, "schedule:   %s\n", cfg.Report.Schedule)
	fmt.Fprintln(w, "ok")
	return nil
}

// cmdSetReport 从清单文件构建集合并打印报告。
// 清单格式：每行一个 MAC，空行与 # 注释行忽略。
func cmdSetReport(w io.Writer, path, title string) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(w, "invalid: %v\n", err)
		return &exitError{code: 1}
	}
	defer f.Close()

	set, err := ndstate.NewSet(0)
	if err != nil {
		return err
	}
	defer set.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := set.AddString(text); err != nil {
			fmt.Fprintf(w, "invalid: line %d: %v\n", line, err)
			return &exitError{code: 1}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return set.Report(w, title)
}
