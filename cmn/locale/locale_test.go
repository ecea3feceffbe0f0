package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ZH},
		{"zh", ZH},
		{"zh-CN", ZH},
		{"en", EN},
		{"en-US", EN},
	}
	for _, c := range cases {
		got, err := Normalize(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := Normalize("fr")
	assert.Error(t, err)
}

func TestTableFallback(t *testing.T) {
	tbl := Table{
		"greeting": {ZH: "你好", EN: "Hello"},
		"zhOnly":   {ZH: "只有中文"},
	}

	assert.Equal(t, "Hello", tbl.T("greeting", EN))
	assert.Equal(t, "你好", tbl.T("greeting", ZH))
	// 缺英文时回落中文
	assert.Equal(t, "只有中文", tbl.T("zhOnly", EN))
	// 未知字段返回空串
	assert.Equal(t, "", tbl.T("missing", ZH))
}

func TestPick(t *testing.T) {
	assert.Equal(t, "甲", Pick(ZH, "甲", "Jia"))
	assert.Equal(t, "Jia", Pick(EN, "甲", "Jia"))
}
