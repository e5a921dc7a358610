package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/storage"
)

// Uploads is the configured storage backend. main swaps in the S3 uploader
// when UPLOAD_BUCKET is set; the simulator is the default.
var Uploads storage.Uploader = storage.NewSimulatedUploader()

const maxUploadSize = 10 << 20 // 10 MiB

// UploadFile stores a multipart "file" field and returns its URL.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "a file is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "message": "file exceeds the 10 MiB limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not read file"})
		return
	}
	defer f.Close()

	url, err := Uploads.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		logrus.WithError(err).WithField("filename", fileHeader.Filename).Error("upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
}
