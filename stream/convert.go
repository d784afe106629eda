package stream

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/arbor/record"
)

// ConvertImage converts a DynamoDB stream image to SDK attribute values.
func ConvertImage(image map[string]events.DynamoDBAttributeValue) (map[string]types.AttributeValue, error) {
	result := make(map[string]types.AttributeValue, len(image))
	for k, v := range image {
		av, err := convertAttribute(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		result[k] = av
	}
	return result, nil
}

func convertAttribute(v events.DynamoDBAttributeValue) (types.AttributeValue, error) {
	switch v.DataType() {
	case events.DataTypeString:
		return &types.AttributeValueMemberS{Value: v.String()}, nil
	case events.DataTypeNumber:
		return &types.AttributeValueMemberN{Value: v.Number()}, nil
	case events.DataTypeBinary:
		return &types.AttributeValueMemberB{Value: v.Binary()}, nil
	case events.DataTypeBoolean:
		return &types.AttributeValueMemberBOOL{Value: v.Boolean()}, nil
	case events.DataTypeNull:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case events.DataTypeStringSet:
		return &types.AttributeValueMemberSS{Value: v.StringSet()}, nil
	case events.DataTypeNumberSet:
		return &types.AttributeValueMemberNS{Value: v.NumberSet()}, nil
	case events.DataTypeBinarySet:
		return &types.AttributeValueMemberBS{Value: v.BinarySet()}, nil
	case events.DataTypeList:
		list := v.List()
		out := make([]types.AttributeValue, len(list))
		for i, item := range list {
			av, err := convertAttribute(item)
			if err != nil {
				return nil, err
			}
			out[i] = av
		}
		return &types.AttributeValueMemberL{Value: out}, nil
	case events.DataTypeMap:
		m, err := ConvertImage(v.Map())
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberM{Value: m}, nil
	default:
		return nil, fmt.Errorf("unsupported data type %v", v.DataType())
	}
}

// ImageToRecord decodes a stream image into a Record. Attributes are sorted
// by name since DynamoDB does not keep attribute order. Numbers decode as
// float64, sets as typed slices.
func ImageToRecord(image map[string]events.DynamoDBAttributeValue) (*record.Record, error) {
	item, err := ConvertImage(image)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return nil, fmt.Errorf("unmarshal image: %w", err)
	}
	return record.FromMap(m), nil
}

// TableName extracts the table name from a stream or table ARN such as
// "arn:aws:dynamodb:eu-west-1:123456789012:table/orders/stream/2024-01-01".
// Strings that are not ARNs are returned unchanged.
func TableName(arn string) string {
	_, rest, found := strings.Cut(arn, ":table/")
	if !found {
		return arn
	}
	name, _, _ := strings.Cut(rest, "/")
	return name
}

// keyValue renders a key attribute as a string.
func keyValue(image map[string]events.DynamoDBAttributeValue, name string) (string, bool) {
	v, ok := image[name]
	if !ok {
		return "", false
	}
	switch v.DataType() {
	case events.DataTypeString:
		return v.String(), v.String() != ""
	case events.DataTypeNumber:
		return v.Number(), true
	case events.DataTypeBinary:
		return base64.RawURLEncoding.EncodeToString(v.Binary()), len(v.Binary()) > 0
	}
	return "", false
}
