package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// staticHandler serves root under /static/*filepath. http.FileServer and
// c.File both redirect ".../index.html" to "./", so the landing page is
// written with ServeContent instead.
func staticHandler(root string) gin.HandlerFunc {
	files := http.StripPrefix("/static", http.FileServer(gin.Dir(root, false)))
	return func(c *gin.Context) {
		if c.Param("filepath") == "/"+indexFile {
			serveIndex(c, root)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

func serveIndex(c *gin.Context, root string) {
	f, err := os.Open(filepath.Join(root, indexFile))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil || st.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}
	http.ServeContent(c.Writer, c.Request, indexFile, st.ModTime(), f)
}
