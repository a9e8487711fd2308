// Package terminal 命令行界面的视图与提示输出
package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorDanger  = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#6b7280")
)

// Presenter 终端视图
// 用例渲染的行先收集起来，Flush时一次性输出为表格
// 非TTY输出（管道、测试）自动去掉颜色
type Presenter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	rows     []book.Book
}

var _ appbook.View = (*Presenter)(nil)

// NewPresenter 创建终端视图
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out, renderer: lipgloss.NewRenderer(out)}
}

// Render 追加一行
func (p *Presenter) Render(b book.Book) { p.rows = append(p.rows, b) }

// RemoveRow 移除ISBN匹配的行
func (p *Presenter) RemoveRow(isbn string) {
	kept := p.rows[:0]
	for _, b := range p.rows {
		if !b.HasISBN(isbn) {
			kept = append(kept, b)
		}
	}
	p.rows = kept
}

// ClearFields 命令行没有输入框
func (p *Presenter) ClearFields() {}

// Flush 输出图书表格，没有图书时输出提示
func (p *Presenter) Flush() error {
	muted := p.renderer.NewStyle().Foreground(colorMuted)
	if len(p.rows) == 0 {
		_, err := fmt.Fprintln(p.out, muted.Render("（目录为空）"))
		return err
	}

	header := p.renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := p.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(muted).
		Headers("书名", "作者", "ISBN").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, b := range p.rows {
		t.Row(b.Title(), b.Author(), b.ISBN())
	}

	_, err := fmt.Fprintf(p.out, "%s\n%s\n", t.Render(), muted.Render(fmt.Sprintf("共 %d 本", len(p.rows))))
	return err
}

// PrintAlert 输出一条提示（success绿色，danger红色）
func (p *Presenter) PrintAlert(message string, kind appbook.AlertKind) error {
	color := colorSuccess
	if kind == appbook.AlertDanger {
		color = colorDanger
	}
	style := p.renderer.NewStyle().Foreground(color).Bold(true)

	_, err := fmt.Fprintln(p.out, style.Render(message))
	return err
}
