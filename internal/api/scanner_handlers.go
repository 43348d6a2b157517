package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frigosmart/internal/scanner"
)

// StartScan handles POST requests to begin a barcode scan session. The
// session outlives the request; the UI polls for the result.
func (s *Server) StartScan(c *gin.Context) {
	err := s.scanner.Start(context.Background())
	if err != nil {
		if errors.Is(err, scanner.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		// Camera acquisition failed; the UI falls back to manual entry.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "scanning"})
}

// StopScan handles POST requests to abort the in-flight scan.
func (s *Server) StopScan(c *gin.Context) {
	s.scanner.Stop()
	c.JSON(http.StatusOK, gin.H{"status": "stopped"})
}

// ScanResult handles GET polls for a completed detection. While the scan
// is still running the poll reports pending instead of blocking.
func (s *Server) ScanResult(c *gin.Context) {
	select {
	case res := <-s.scanner.Results():
		c.JSON(http.StatusOK, res)
	default:
		c.JSON(http.StatusOK, gin.H{"pending": true, "active": s.scanner.Active()})
	}
}
