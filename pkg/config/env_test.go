package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("CFG_STR", "  value ")
	assert.Equal(t, "value", GetEnvString("CFG_STR", "def"))

	t.Setenv("CFG_STR", "   ")
	assert.Equal(t, "def", GetEnvString("CFG_STR", "def"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 7},
		{name: "valid", value: "42", want: 42},
		{name: "negative", value: "-3", want: -3},
		{name: "garbage", value: "12abc", want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CFG_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("CFG_INT", 7))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("CFG_FLOAT", "0.25")
	assert.InDelta(t, 0.25, GetEnvFloat("CFG_FLOAT", 1), 1e-9)

	t.Setenv("CFG_FLOAT", "x")
	assert.InDelta(t, 1.0, GetEnvFloat("CFG_FLOAT", 1), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "TRUE", want: true},
		{value: "yes", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CFG_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("CFG_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("CFG_DUR", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("CFG_DUR", time.Second))

	t.Setenv("CFG_DUR", "ninety")
	assert.Equal(t, time.Second, GetEnvDuration("CFG_DUR", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("CFG_LIST", " a, ,b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvStringList("CFG_LIST", nil))

	t.Setenv("CFG_LIST", " , ")
	assert.Equal(t, []string{"d"}, GetEnvStringList("CFG_LIST", []string{"d"}))
}

func TestFirstEnvAndIsDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "development")
	assert.Equal(t, "development", FirstEnv("APP_ENV", "NODE_ENV"))
	assert.True(t, IsDevelopment())

	t.Setenv("APP_ENV", "production")
	assert.False(t, IsDevelopment())
}

func TestValidateDurationRangeBounds(t *testing.T) {
	assert.NoError(t, ValidateDurationRange(time.Minute, time.Second, time.Hour))
	assert.Error(t, ValidateDurationRange(time.Millisecond, time.Second, time.Hour))
	assert.Error(t, ValidateDurationRange(2*time.Hour, time.Second, time.Hour))
	assert.Error(t, ValidateDurationRange(time.Minute, time.Hour, time.Second))
	assert.Error(t, ValidatePositiveDuration(0))
}
