package public

import (
	"bufio"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/progclub/potd/internal/util"
)

// uploadHandles accepts a .txt file with one judge handle per line and
// returns the parsed list. Nothing is persisted; the client feeds the list
// back into /verify.
func (h *Handler) uploadHandles(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".txt" {
		util.Error(c, http.StatusBadRequest, "Only .txt files are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process file")
		return
	}
	defer src.Close()

	var handles []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			handles = append(handles, line)
		}
	}
	if err := scanner.Err(); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process file")
		return
	}

	if len(handles) == 0 {
		util.Error(c, http.StatusBadRequest, "File is empty or contains no valid handles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"handles": handles,
		"count":   len(handles),
	})
}
