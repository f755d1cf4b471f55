// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamUnavailable, code, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}
