package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pesalens/mpesa-csv/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementCSV = `Receipt No,Completion Time,Details,Paid In,Withdrawn,Balance
R1,2024-01-01,Shop sale,1000,0,5000
R2,2024-01-02,Supplier pay,0,300,4700
`

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Server.Port = 8080
	cfg.Server.BodyLimitMB = 16
	cfg.Server.MaxTxEchoed = 500
	return cfg
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHealthz(t *testing.T) {
	server := New(testConfig(), nil)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestHandleParse(t *testing.T) {
	server := New(testConfig(), nil)

	resp, err := server.App().Test(uploadRequest(t, "statement.csv", statementCSV))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded parseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.Equal(t, "mpesa_statement", decoded.Format)
	assert.Equal(t, "M-Pesa Statement", decoded.FormatLabel)
	assert.Equal(t, 2, decoded.TotalRows)
	assert.Equal(t, 2, decoded.TransactionCount)
	require.Len(t, decoded.Transactions, 2)
	assert.False(t, decoded.Truncated)
	assert.Equal(t, "1000.00", decoded.Metrics.TotalRevenue)
	assert.Equal(t, "700.00", decoded.Metrics.NetProfit)
	assert.Equal(t, 100, decoded.Metrics.HealthScore)
}

func TestHandleParseTruncatesEcho(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxTxEchoed = 1
	server := New(cfg, nil)

	resp, err := server.App().Test(uploadRequest(t, "statement.csv", statementCSV))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded parseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.True(t, decoded.Truncated)
	assert.Len(t, decoded.Transactions, 1)
	// The count reflects the full parse, not the echoed slice.
	assert.Equal(t, 2, decoded.TransactionCount)
}

func TestHandleParseMissingFile(t *testing.T) {
	server := New(testConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleParseRejectsExtension(t *testing.T) {
	server := New(testConfig(), nil)

	resp, err := server.App().Test(uploadRequest(t, "statement.pdf", statementCSV))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "validation failed for statement.pdf")
}

func TestHandleParseHardFailure(t *testing.T) {
	server := New(testConfig(), nil)

	// Every data row is malformed, so nothing survives the row reader.
	broken := "Receipt No,Completion Time,Details,Paid In,Withdrawn,Balance\nonly,two\n"
	resp, err := server.App().Test(uploadRequest(t, "broken.csv", broken))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var decoded errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.NotEmpty(t, decoded.Error)
}
