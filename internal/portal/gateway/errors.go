package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx answer from the backend, carrying whatever error
// code and message the server sent.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	// The server answers either with the structured envelope
	// {"error":{"code":...,"message":...}} or a flat {"code":...,"message":...}.
	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		} else {
			apiErr.Message = envelope.Message
		}
	}

	return apiErr
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// User-management operations surface errors in French, matching the
// language of the admin screens. Everything else propagates untranslated.
func localizeUserError(err error) error {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return err
	}

	message := ""
	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		if apiErr.Message != "" {
			message = apiErr.Message
		} else {
			message = "Données invalides. Veuillez vérifier les informations saisies."
		}
	case http.StatusUnauthorized:
		message = "Session expirée. Veuillez vous reconnecter."
	case http.StatusForbidden:
		message = "Vous n'avez pas les droits pour effectuer cette action."
	case http.StatusNotFound:
		message = "Utilisateur introuvable."
	case http.StatusConflict:
		message = "Un utilisateur avec cet email, ce CIN ou ce matricule existe déjà."
	default:
		message = "Une erreur est survenue. Veuillez réessayer plus tard."
	}

	return &APIError{StatusCode: apiErr.StatusCode, Code: apiErr.Code, Message: message}
}
