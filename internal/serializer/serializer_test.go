package serializer_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/serializer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []model.ResultRecord {
	return []model.ResultRecord{
		{
			QuizID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			CompanyID:    uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			UserID:       uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			CorrectCount: 1,
			TotalCount:   2,
		},
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "json"}, serializer.Formats())

	_, err := serializer.ForFormat("xml")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	s, err := serializer.ForFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, "json", s.Extension())
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serializer.Encode("json", records(), &buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", decoded[0]["quiz_id"])
	assert.EqualValues(t, 1, decoded[0]["correct_count"])
	assert.EqualValues(t, 2, decoded[0]["total_count"])
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serializer.Encode("csv", records(), &buf))

	want := "quiz_id,company_id,user_id,correct_count,total_count\n" +
		"11111111-1111-1111-1111-111111111111,22222222-2222-2222-2222-222222222222,33333333-3333-3333-3333-333333333333,1,2\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serializer.Encode("csv", []model.ResultRecord{}, &buf))
	assert.Equal(t, "quiz_id,company_id,user_id,correct_count,total_count\n", buf.String())
}

func TestEncodeCSVRejectsNonSlice(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, serializer.Encode("csv", "nope", &buf))
}
