package crash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutToken(t *testing.T) {
	r := New("", "development")
	assert.IsType(t, noopService{}, r)
	r.ReportError(fmt.Errorf("dropped"))
	r.Wait()
}

func TestNewWithToken(t *testing.T) {
	r := New("token", "development")
	assert.IsType(t, rollbarService{}, r)
}
