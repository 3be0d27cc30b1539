package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/onepager/content"
	"github.com/ByLCY/onepager/layout"
	"github.com/ByLCY/onepager/renderer"
	canvasrenderer "github.com/ByLCY/onepager/renderer/canvas"
)

const defaultOutput = "output/lighten-ai-one-pager.pdf"

type config struct {
	input  string // 为空时使用内置文案
	output string
	debug  string
	data   any
	strict bool
}

func main() {
	input := flag.String("in", "", "内容 DSL 文件路径（为空时使用内置文案）")
	output := flag.String("out", defaultOutput, "PDF 输出路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到 ${path} 占位符的 JSON 数据")
	strict := flag.Bool("strict", false, "存在无法解析的占位符时报错")
	flag.Parse()

	cfg := config{input: *input, output: *output, debug: *debug, strict: *strict}
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &cfg.data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	r := canvasrenderer.NewRenderer()
	size, err := run(cfg, r, r)
	if err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("PDF saved to: %s\n", cfg.output)
	fmt.Printf("File size: %.1f KB\n", float64(size)/1024)
}

// run 串联内容加载、布局与渲染，返回写入的字节数。
func run(cfg config, m layout.Measurer, r renderer.Renderer) (int, error) {
	if r == nil || m == nil {
		return 0, fmt.Errorf("renderer 与 measurer 不能为空")
	}

	c := content.Default()
	if cfg.input != "" {
		loaded, err := content.Load(cfg.input)
		if err != nil {
			return 0, err
		}
		c = loaded
	}

	result, err := layout.Build(c, layout.BuildOptions{Measurer: m, Data: cfg.data, Strict: cfg.strict})
	if err != nil {
		return 0, fmt.Errorf("布局计算失败: %w", err)
	}
	for _, w := range result.Warnings {
		log.Printf("警告: %s", w)
	}

	if cfg.debug != "" {
		if err := writeDebug(result, cfg.debug); err != nil {
			return 0, err
		}
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return 0, fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := writeAtomic(cfg.output, pdfBytes); err != nil {
		return 0, err
	}
	return len(pdfBytes), nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// writeAtomic 先写入同目录下的临时文件再重命名，失败时不会留下半个 PDF。
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // 重命名成功后为空操作

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("设置文件权限失败: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("保存 PDF 文件失败: %w", err)
	}
	return nil
}
