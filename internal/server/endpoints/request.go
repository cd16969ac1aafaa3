package endpoints

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jackzampolin/pagina/internal/schema"
)

// maxBodyBytes caps request bodies. Page lists for large books stay well below it.
const maxBodyBytes = 4 << 20

// decodeRequest reads the body, validates it against the named schema and
// decodes it into v.
func decodeRequest(r *http.Request, schemaName string, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", schema.ErrInvalidRequest, err)
	}
	if err := schema.Validate(schemaName, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrInvalidRequest, err)
	}
	return nil
}
