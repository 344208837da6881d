package applicant

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUnmarshalScalarString(t *testing.T) {
	var f Flex
	err := f.UnmarshalDynamo(&types.AttributeValueMemberS{Value: "Biology"})
	require.NoError(t, err)
	assert.Equal(t, "Biology", f.Scalar)
	assert.Empty(t, f.Selected)
}

func TestFlexUnmarshalNumber(t *testing.T) {
	var f Flex
	err := f.UnmarshalDynamo(&types.AttributeValueMemberN{Value: "21"})
	require.NoError(t, err)
	assert.Equal(t, "21", f.Scalar)
}

func TestFlexUnmarshalSelectedKeysMap(t *testing.T) {
	var f Flex
	err := f.UnmarshalDynamo(&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"instagram": &types.AttributeValueMemberBOOL{Value: true},
		"friend":    &types.AttributeValueMemberBOOL{Value: false},
		"other":     &types.AttributeValueMemberS{Value: "campus poster"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "", f.Scalar)
	assert.Equal(t, map[string]bool{"instagram": true, "friend": false}, f.Selected)
	assert.Equal(t, "campus poster", f.Other)
	assert.Equal(t, "instagram, campus poster", f.Resolve())
}

func TestFlexUnmarshalUnknownShapeDegrades(t *testing.T) {
	var f Flex
	err := f.UnmarshalDynamo(&types.AttributeValueMemberL{})
	require.NoError(t, err)
	assert.True(t, f.IsZero())
}

func TestFlexMarshalRoundTrip(t *testing.T) {
	original := Flex{Selected: map[string]bool{"twitter": true}, Other: "newsletter"}
	av, err := original.MarshalDynamo()
	require.NoError(t, err)

	var decoded Flex
	require.NoError(t, decoded.UnmarshalDynamo(av))
	assert.Equal(t, original, decoded)
}
