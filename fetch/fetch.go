package fetch

import (
	"fmt"
	"io"
	"net/http"

	"github.com/soravia/notedense/constants"
)

// Download fetches beatmap file content from a URL.
func Download(url string) (string, error) {
	client := &http.Client{Timeout: constants.GetDownloadTimeout()}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("downloading beatmap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("http error: %v", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading beatmap body: %w", err)
	}
	return string(body), nil
}
