package layout

// BuildOptions 配置布局阶段所需的依赖，例如字体度量后端与绑定数据。
type BuildOptions struct {
	Measurer Measurer
	Data     any  // 绑定到 ${path} 占位符的 JSON 数据
	Strict   bool // 存在无法解析的占位符时返回错误，而不是警告
}

// Measurer 负责测量文本在给定字体与字号下的宽度（pt）。
type Measurer interface {
	TextWidth(text string, font Font, size float64) (float64, error)
}
