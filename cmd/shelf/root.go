package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/terminal"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// newRootCmd 构建命令树
// stdout输出表格和提示，stderr输出日志与错误
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "shelf",
		Short:        "个人图书目录",
		Long:         "添加、列出、删除图书。存储位置由配置文件storage段决定，与API服务共享。",
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("BOOKSHELF_CONFIG"), "配置文件路径（默认./config/config.yaml）")

	// withApp 为子命令组装依赖，执行完释放
	withApp := func(run func(ctx context.Context, a *app, p *terminal.Presenter, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			return run(cmd.Context(), a, terminal.NewPresenter(cmd.OutOrStdout()), args)
		}
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "列出全部图书",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, p *terminal.Presenter, _ []string) error {
			a.load.Execute(ctx, p)
			return p.Flush()
		}),
	}

	var title, author, isbn string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "添加图书",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, p *terminal.Presenter, _ []string) error {
			_, err := a.submit.Execute(ctx, appbook.SubmitBookRequest{Title: title, Author: author, ISBN: isbn}, p)
			if printErr := printAlert(a, p); printErr != nil {
				return printErr
			}
			return err
		}),
	}
	addCmd.Flags().StringVar(&title, "title", "", "书名")
	addCmd.Flags().StringVar(&author, "author", "", "作者")
	addCmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")

	rmCmd := &cobra.Command{
		Use:     "rm <isbn>",
		Aliases: []string{"remove", "delete"},
		Short:   "删除ISBN匹配的全部图书",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, p *terminal.Presenter, args []string) error {
			a.remove.Execute(ctx, args[0], p)
			return printAlert(a, p)
		}),
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "订阅目录变更事件（Ctrl+C退出）",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ *terminal.Presenter, _ []string) error {
			return watch(ctx, a, stdout)
		}),
	}

	rootCmd.AddCommand(listCmd, addCmd, rmCmd, watchCmd)
	return rootCmd
}

// printAlert 输出用例留下的提示
func printAlert(a *app, p *terminal.Presenter) error {
	cur := a.notifier.Current()
	if cur == nil {
		return nil
	}
	return p.PrintAlert(cur.Message, cur.Kind)
}

// watch 打印收到的目录事件，直到收到SIGINT/SIGTERM
func watch(ctx context.Context, a *app, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := mq.NewConsumer(a.cfg.Events.URL, a.cfg.Events.Exchange, []string{"book.*"}, a.logger)
	if err != nil {
		return err
	}
	defer consumer.Close()

	return consumer.Consume(ctx, func(d mq.Delivery) error {
		_, err := fmt.Fprintln(out, formatEvent(d))
		return err
	})
}

// formatEvent 事件的单行文本
func formatEvent(d mq.Delivery) string {
	var ev appbook.CatalogEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		return fmt.Sprintf("%s %s", d.RoutingKey, d.Body)
	}

	ts := ev.OccurredAt.Format("2006-01-02 15:04:05")
	if ev.Title == "" {
		return fmt.Sprintf("%s %s isbn=%s", ts, d.RoutingKey, ev.ISBN)
	}
	return fmt.Sprintf("%s %s isbn=%s 《%s》 %s", ts, d.RoutingKey, ev.ISBN, ev.Title, ev.Author)
}
