package helper

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimeLayout is the common time format layout.
const TimeLayout = "2006-01-02 15:04:05"

// ToJSON pretty prints any value as JSON string.
func ToJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// PrintWithLabel 输出带标签的调试信息到标准错误，结构值以 JSON 展开
func PrintWithLabel(label string, v any) {
	if s, ok := v.(string); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", label, s)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", label, ToJSON(v))
}
