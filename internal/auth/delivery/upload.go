package delivery

import (
	"errors"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 5 << 20 // 5MB

func validateImageUpload(file *multipart.FileHeader) error {
	if file.Size > maxUploadSize {
		return errors.New("File size too large. Maximum size is 5MB.")
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return errors.New("Only image files are allowed")
	}
	return nil
}

// saveUploadTemp writes the uploaded file to a temporary path. The returned
// cleanup must run on every exit path.
func saveUploadTemp(c *gin.Context, file *multipart.FileHeader, prefix string) (string, func(), error) {
	tmp, err := os.CreateTemp("", prefix+"-*"+filepath.Ext(file.Filename))
	if err != nil {
		return "", nil, err
	}
	tmp.Close()

	if err := c.SaveUploadedFile(file, tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}

	cleanup := func() {
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove temp upload %s: %v", tmp.Name(), err)
		}
	}
	return tmp.Name(), cleanup, nil
}
