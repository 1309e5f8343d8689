package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// compressReader распаковывает сжатое тело запроса
type compressReader struct {
	r          io.ReadCloser
	gzipReader *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{r: r, gzipReader: gzipReader}, nil
}

func (c *compressReader) Read(p []byte) (int, error) {
	return c.gzipReader.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.gzipReader.Close(); err != nil {
		return err
	}
	return c.r.Close()
}

// shouldCompress решает, сжимать ли ответ, по Content-Type
func shouldCompress(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return ct == "application/json" || ct == "text/html"
}

// gzipResponseWriter сжимает тело ответа если Content-Type подходит
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func newGzipResponseWriter(w http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{
		ResponseWriter: w,
		gzipWriter:     gzip.NewWriter(w),
	}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if shouldCompress(w.Header().Get("Content-Type")) && statusCode < 300 {
		w.Header().Set("Content-Encoding", "gzip")
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.compressing {
		return w.gzipWriter.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.compressing {
		return w.gzipWriter.Close()
	}
	return nil
}

// Gzip добавляет поддержку gzip для тел запросов и ответов
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				cr, err := newCompressReader(r.Body)
				if err != nil {
					logger.Error("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := cr.Close(); err != nil {
						logger.Warn("failed to close compress reader", zap.Error(err))
					}
				}()
				r.Body = cr
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzipWriter := newGzipResponseWriter(w)
			defer func() {
				if err := gzipWriter.Close(); err != nil {
					logger.Error("failed to close gzip writer", zap.Error(err))
				}
			}()

			next.ServeHTTP(gzipWriter, r)
		})
	}
}
