package adapters

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
)

type ContentStreamer interface {
	FetchToFile(req *http.Request, dest string) error
}

type contentStreamer struct {
	logger outbound.LoggerPort
}

func NewContentStreamer(logger outbound.LoggerPort) ContentStreamer {
	return &contentStreamer{
		logger: logger,
	}
}

// FetchToFile streams the response body for req into dest. On any
// failure the partial file is removed so callers never reference one.
func (c *contentStreamer) FetchToFile(req *http.Request, dest string) error {
	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		bodyPayload, readErr := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(readErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	file, err := os.Create(dest)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to create the destination file", map[string]interface{}{
			"dest": dest,
		})
		return err
	}

	_, err = io.Copy(file, res.Body)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to write the response body", map[string]interface{}{
			"URL":  req.URL.String(),
			"dest": dest,
		})
		if removeErr := os.Remove(dest); removeErr != nil {
			c.logger.Error(removeErr, "Failed to remove partial file")
		}
		return err
	}

	return nil
}
