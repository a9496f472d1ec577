package control

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kd9xyz/ddrx/ddr"
)

type stubTuner struct {
	centerFq uint32
}

func (s *stubTuner) Name() string       { return "wbrx0" }
func (s *stubTuner) SampleRate() uint32 { return 2400000 }
func (s *stubTuner) CenterFq() uint32   { return s.centerFq }
func (s *stubTuner) IsReady() bool      { return true }
func (s *stubTuner) RegisterDdr(*ddr.DDR) {}
func (s *stubTuner) UnregisterDdr(*ddr.DDR) {}

func newTestServer(t *testing.T) (*Server, *ddr.Registry) {
	t.Helper()
	reg := ddr.NewRegistry()
	tuner := &stubTuner{centerFq: 100000000}
	d := ddr.NewDDR("RX1")
	require.NoError(t, d.Initialize(reg, tuner, ddr.Params{FQ: 100025000, Modulation: "FM"}))
	return NewServer(reg), reg
}

func TestHandleListReturnsRegisteredDDRs(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ddrs", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var infos []DDRInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "RX1", infos[0].Name)
	assert.Equal(t, int64(100025000), infos[0].FQ)
	assert.Equal(t, "FM", infos[0].Modulation)
	assert.True(t, infos[0].Enabled)
}

func TestHandleListRejectsNonGET(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/ddrs", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleTuneRetunesDDR(t *testing.T) {
	s, reg := newTestServer(t)

	body, _ := json.Marshal(tuneRequest{FQ: 100050000})
	req := httptest.NewRequest(http.MethodPost, "/ddrs/RX1/tune", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	d, ok := reg.Find("RX1")
	require.True(t, ok)
	assert.Equal(t, int64(100050000), d.FQ())
}

func TestHandleTuneUnknownDDRReturns404(t *testing.T) {
	s, _ := newTestServer(t)

	body, _ := json.Marshal(tuneRequest{FQ: 100050000})
	req := httptest.NewRequest(http.MethodPost, "/ddrs/NOPE/tune", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleTuneRejectsMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/ddrs/RX1/tune", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
