package output

import (
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/bline/tree2files/helper"
	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/tree"
)

// PDFExporter 把树形图排版成 PDF 文档
type PDFExporter struct {
	root *scaffold.Node
}

// NewPDFExporter 创建 PDF 导出器
func NewPDFExporter(root *scaffold.Node) *PDFExporter {
	return &PDFExporter{root: root}
}

// PDF 内置字体只覆盖 cp1252，制表符画线字符要换成等价的 ASCII 连接符，
// 解析器同样认识这套写法
var asciiConnectors = strings.NewReplacer(
	"├──", "|--",
	"└──", "`--",
	"│", "|",
)

// Export 生成 PDF 文件
func (e *PDFExporter) Export(outputFile string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(e.root.Name, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(e.root.Name), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Courier", "", 10)
	rendered := asciiConnectors.Replace(tree.Tree(e.root))
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr(tree.Stats(e.root).String()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated at "+time.Now().Format(helper.TimeLayout), "", 1, "L", false, 0, "")

	return pdf.OutputFileAndClose(outputFile)
}
