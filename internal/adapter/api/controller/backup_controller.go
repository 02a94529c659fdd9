package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/dto"
	"github.com/docebom/pdv-local/internal/backup"
	"github.com/docebom/pdv-local/internal/dataset"
	"github.com/docebom/pdv-local/pkg/logger"
)

// BackupController gerencia exportação e importação do backup completo
type BackupController struct {
	data   *dataset.Dataset
	codec  *backup.Codec
	logger logger.Logger
}

// NewBackupController cria uma nova instância de BackupController
func NewBackupController(data *dataset.Dataset, codec *backup.Codec, logger logger.Logger) *BackupController {
	return &BackupController{
		data:   data,
		codec:  codec,
		logger: logger,
	}
}

// Export devolve as quatro coleções em um único documento, como anexo com a
// data no nome do arquivo
func (c *BackupController) Export(ctx *gin.Context) {
	raw, err := c.codec.Export(c.data.Snapshot())
	if err != nil {
		c.logger.Error("erro ao exportar backup", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar backup", err.Error()))
		return
	}

	filename := c.codec.FileName(time.Now())
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "application/json", raw)
}

// Import substitui as coleções presentes no documento enviado. Campos
// ausentes ou ilegíveis mantêm a coleção atual; um documento que não é JSON
// é rejeitado sem alterar nada.
func (c *BackupController) Import(ctx *gin.Context) {
	raw, err := c.readDocument(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo de backup", err.Error()))
		return
	}

	partial, err := c.codec.Import(raw)
	if err != nil {
		if errors.Is(err, backup.ErrInvalidDocument) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo de backup inválido", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao importar backup", err.Error()))
		return
	}

	c.data.Replace(partial)
	c.logger.Info("backup importado")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("dados importados", nil))
}

// readDocument aceita o arquivo tanto como multipart (campo "file") quanto
// como corpo JSON puro
func (c *BackupController) readDocument(ctx *gin.Context) ([]byte, error) {
	if file, err := ctx.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	return io.ReadAll(ctx.Request.Body)
}
