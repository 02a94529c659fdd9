package imagelink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertDriveLink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "link de compartilhamento",
			in:   "https://drive.google.com/file/d/1a2B3c4D/view?usp=sharing",
			want: "https://drive.google.com/uc?export=view&id=1a2B3c4D",
		},
		{
			name: "url comum passa direto",
			in:   "https://example.com/imagem.png",
			want: "https://example.com/imagem.png",
		},
		{
			name: "drive sem padrão de arquivo passa direto",
			in:   "https://drive.google.com/drive/folders/abc",
			want: "https://drive.google.com/drive/folders/abc",
		},
		{
			name: "vazio",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertDriveLink(tt.in))
		})
	}
}
