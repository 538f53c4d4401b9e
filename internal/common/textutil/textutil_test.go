package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "창업 지원", "창업 지원"},
		{"tags and nbsp", "<p>예비&nbsp;창업자</p>\n\n<b>모집</b>", "예비 창업자 모집"},
		{"whitespace runs", "  지원   대상 :\t청년  ", "지원 대상 : 청년"},
		{"nested", "<div><ul><li>1차 </li><li> 2차</li></ul></div>", "1차 2차"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "짧은 글...", TruncateWithEllipsis("짧은 글", 200))

	long := strings.Repeat("가", 250)
	got := TruncateWithEllipsis(long, 200)
	assert.Equal(t, 203, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 158, Round(157.5))
	assert.Equal(t, 1058, Round(1058.46))
	assert.Equal(t, -2, Round(-1.5))
	assert.Equal(t, 0, Round(0.49))
}

