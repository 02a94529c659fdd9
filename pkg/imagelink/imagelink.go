package imagelink

import (
	"regexp"
	"strings"
)

var driveFilePattern = regexp.MustCompile(`/file/d/([^/]+)/`)

// ConvertDriveLink reescreve links de compartilhamento do Google Drive para o
// formato de visualização direta, que funciona em tags de imagem. Qualquer
// outra URL passa sem alteração.
func ConvertDriveLink(url string) string {
	if url == "" || !strings.Contains(url, "drive.google.com") {
		return url
	}

	match := driveFilePattern.FindStringSubmatch(url)
	if match == nil {
		return url
	}

	return "https://drive.google.com/uc?export=view&id=" + match[1]
}
