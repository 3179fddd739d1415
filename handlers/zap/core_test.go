package zaphandler

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/censor"
)

type payment struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" censor:"display"`
	Card     string  `json:"card"`
}

type accountID string

func (a accountID) String() string { return "acct-" + string(a) }

func newLogger(t *testing.T, buf *bytes.Buffer, opts ...Option) *zap.Logger {
	t.Helper()
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	base := zapcore.NewCore(enc, zapcore.AddSync(buf), zapcore.DebugLevel)
	return zap.New(NewCore(base, opts...))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestCore_MasksReflectedField(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(t, &buf, WithProcessor(censor.MustNew()))

	logger.Info("paid", zap.Any("payment", payment{Amount: 9.99, Currency: "EUR", Card: "4111"}))

	got := decode(t, &buf)
	assert.Equal(t, map[string]any{
		"amount":   9.99,
		"currency": "EUR",
		"card":     censor.DefaultMaskValue,
	}, got["payment"])
}

func TestCore_ScrubsStringFields(t *testing.T) {
	var buf bytes.Buffer
	p := censor.MustNew(censor.WithExcludePatterns(`\d{4}-\d{4}-\d{4}-\d{4}`))
	logger := newLogger(t, &buf, WithProcessor(p), WithMessageScrub(true))

	logger.Info("card 4111-1111-1111-1111 declined",
		zap.String("note", "retry 4111-1111-1111-1111"),
		zap.Stringer("account", accountID("7")),
	)

	got := decode(t, &buf)
	assert.Equal(t, "card [CENSORED] declined", got["msg"])
	assert.Equal(t, "retry [CENSORED]", got["note"])
	assert.Equal(t, "acct-7", got["account"])
}

func TestCore_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(t, &buf, WithProcessor(censor.MustNew())).
		With(zap.Reflect("tags", []string{"a", "b"}))

	logger.Info("tagged")

	got := decode(t, &buf)
	assert.Equal(t, []any{censor.DefaultMaskValue, censor.DefaultMaskValue}, got["tags"])
}

func TestCore_DoesNotMutateCallerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(t, &buf, WithProcessor(censor.MustNew()))

	fields := []zap.Field{zap.Any("payment", payment{Card: "4111"})}
	logger.Info("first", fields...)

	_, ok := fields[0].Interface.(payment)
	assert.True(t, ok, "caller field should keep its original value")
}
