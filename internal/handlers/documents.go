package handlers

import (
	"fmt"
	"io"
	"net/http"

	"complypilot/internal/apperr"
	"complypilot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// UploadDocument accepts a multipart policy document and stores it with
// analysis pending.
func UploadDocument(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, fmt.Errorf("%w: file is required", apperr.ErrInvalidInput))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		respondError(c, err)
		return
	}

	doc, err := documentSvc.Upload(user.UserID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func ListDocuments(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	docs, err := documentSvc.List(user.UserID, 100)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func GetDocument(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	doc, err := documentSvc.Get(c.Param("id"), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AnalyzeDocument runs the gap analysis. A failed run is persisted as such
// and can be retried by calling this endpoint again.
func AnalyzeDocument(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	doc, err := documentSvc.Analyze(c.Request.Context(), c.Param("id"), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"document_id": doc.ID,
		"filename":    doc.Filename,
		"analysis":    doc.AnalysisResult,
		"analyzed_at": doc.AnalyzedAt,
	})
}

func DeleteDocument(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := documentSvc.Delete(c.Param("id"), user.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
