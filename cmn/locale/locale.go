// Package locale 提供语言标签归一化和本地化字符串表。
// 所有模块的中英文案统一走 Table 查表，避免在业务代码里到处写 if isZh 分支。
package locale

import (
	"fmt"
	"strings"
)

const (
	ZH = "zh" // 中文
	EN = "en" // 英文
)

// Normalize 归一化语言标签，空值回落到中文，不支持的标签返回错误
func Normalize(tag string) (string, error) {
	switch {
	case tag == "":
		return ZH, nil
	case tag == ZH || strings.HasPrefix(tag, "zh-"):
		return ZH, nil
	case tag == EN || strings.HasPrefix(tag, "en-"):
		return EN, nil
	}
	return "", fmt.Errorf("unsupported locale %q", tag)
}

// Table 本地化字符串表，按 字段→语言 组织
type Table map[string]map[string]string

// T 查询指定字段在指定语言下的文案，缺失时回落到中文
func (t Table) T(field, loc string) string {
	byLocale, ok := t[field]
	if !ok {
		return ""
	}
	if s, ok := byLocale[loc]; ok {
		return s
	}
	return byLocale[ZH]
}

// Pick 按语言在两个文案中二选一
func Pick(loc, zh, en string) string {
	if loc == EN {
		return en
	}
	return zh
}
