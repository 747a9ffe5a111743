package apitest

import (
	"bytes"
	"io"
	"net/http"
)

func readAndRestore(req *http.Request) (string, error) {
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return "", err
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	return string(b), nil
}
