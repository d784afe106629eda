package stream

import (
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// --- keyValue Tests ---

func TestKeyValue_String(t *testing.T) {
	image := map[string]events.DynamoDBAttributeValue{
		"id": events.NewStringAttribute("order-1"),
	}

	result, ok := keyValue(image, "id")
	if !ok || result != "order-1" {
		t.Errorf("expected 'order-1', got %q (ok=%v)", result, ok)
	}
}

func TestKeyValue_Number(t *testing.T) {
	image := map[string]events.DynamoDBAttributeValue{
		"id": events.NewNumberAttribute("1234567890"),
	}

	result, ok := keyValue(image, "id")
	if !ok || result != "1234567890" {
		t.Errorf("expected '1234567890', got %q (ok=%v)", result, ok)
	}
}

func TestKeyValue_Binary(t *testing.T) {
	image := map[string]events.DynamoDBAttributeValue{
		"id": events.NewBinaryAttribute([]byte{0xfb, 0xff}),
	}

	result, ok := keyValue(image, "id")
	if !ok || result != "-_8" {
		t.Errorf("expected '-_8', got %q (ok=%v)", result, ok)
	}
}

func TestKeyValue_MissingKey(t *testing.T) {
	image := map[string]events.DynamoDBAttributeValue{
		"other": events.NewStringAttribute("value"),
	}

	if result, ok := keyValue(image, "id"); ok {
		t.Errorf("expected no key, got %q", result)
	}
}

func TestKeyValue_NilImage(t *testing.T) {
	var image map[string]events.DynamoDBAttributeValue

	if result, ok := keyValue(image, "id"); ok {
		t.Errorf("expected no key for nil image, got %q", result)
	}
}

func TestKeyValue_EmptyString(t *testing.T) {
	image := map[string]events.DynamoDBAttributeValue{
		"id": events.NewStringAttribute(""),
	}

	if _, ok := keyValue(image, "id"); ok {
		t.Error("expected empty string to be rejected as a key")
	}
}

func TestKeyValue_UnsupportedType(t *testing.T) {
	image := map[string]events.DynamoDBAttributeValue{
		"id": events.NewBooleanAttribute(true),
	}

	if _, ok := keyValue(image, "id"); ok {
		t.Error("expected boolean attribute to be rejected as a key")
	}
}

// --- recordKey Tests ---

func TestRecordKey_FallsBackToKeys(t *testing.T) {
	keys := map[string]events.DynamoDBAttributeValue{
		"id": events.NewStringAttribute("from-keys"),
	}

	result, err := recordKey(nil, keys, "id")
	if err != nil || result != "from-keys" {
		t.Errorf("expected 'from-keys', got %q (err=%v)", result, err)
	}
}

func TestRecordKey_Missing(t *testing.T) {
	_, err := recordKey(nil, nil, "id")
	if !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey, got %v", err)
	}
}

// --- TableName Tests ---

func TestTableName(t *testing.T) {
	tests := []struct {
		arn      string
		expected string
	}{
		{"arn:aws:dynamodb:eu-west-1:123456789012:table/orders/stream/2024-01-01T00:00:00.000", "orders"},
		{"arn:aws:dynamodb:us-east-1:123456789012:table/users", "users"},
		{"plain-name", "plain-name"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := TableName(tt.arn); result != tt.expected {
			t.Errorf("TableName(%q) = %q, want %q", tt.arn, result, tt.expected)
		}
	}
}

// --- convertAttribute Tests ---

func TestConvertAttribute_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input events.DynamoDBAttributeValue
		check func(types.AttributeValue) bool
	}{
		{"string", events.NewStringAttribute("s"), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberS)
			return ok && v.Value == "s"
		}},
		{"number", events.NewNumberAttribute("12.5"), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberN)
			return ok && v.Value == "12.5"
		}},
		{"binary", events.NewBinaryAttribute([]byte("b")), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberB)
			return ok && string(v.Value) == "b"
		}},
		{"bool", events.NewBooleanAttribute(true), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberBOOL)
			return ok && v.Value
		}},
		{"null", events.NewNullAttribute(), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberNULL)
			return ok && v.Value
		}},
		{"string set", events.NewStringSetAttribute([]string{"a", "b"}), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberSS)
			return ok && len(v.Value) == 2
		}},
		{"number set", events.NewNumberSetAttribute([]string{"1", "2", "3"}), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberNS)
			return ok && len(v.Value) == 3
		}},
		{"binary set", events.NewBinarySetAttribute([][]byte{[]byte("x")}), func(av types.AttributeValue) bool {
			v, ok := av.(*types.AttributeValueMemberBS)
			return ok && len(v.Value) == 1
		}},
	}

	for _, tt := range tests {
		av, err := convertAttribute(tt.input)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if !tt.check(av) {
			t.Errorf("%s: unexpected conversion %#v", tt.name, av)
		}
	}
}

func TestConvertAttribute_Nested(t *testing.T) {
	input := events.NewMapAttribute(map[string]events.DynamoDBAttributeValue{
		"tags": events.NewListAttribute([]events.DynamoDBAttributeValue{
			events.NewStringAttribute("x"),
			events.NewMapAttribute(map[string]events.DynamoDBAttributeValue{
				"n": events.NewNumberAttribute("1"),
			}),
		}),
	})

	av, err := convertAttribute(input)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		t.Fatalf("expected map, got %T", av)
	}
	list, ok := m.Value["tags"].(*types.AttributeValueMemberL)
	if !ok || len(list.Value) != 2 {
		t.Fatalf("expected 2-element list, got %#v", m.Value["tags"])
	}
	inner, ok := list.Value[1].(*types.AttributeValueMemberM)
	if !ok {
		t.Fatalf("expected nested map, got %T", list.Value[1])
	}
	if n, ok := inner.Value["n"].(*types.AttributeValueMemberN); !ok || n.Value != "1" {
		t.Errorf("expected n=1, got %#v", inner.Value["n"])
	}
}

// --- Benchmark Tests ---

func BenchmarkKeyValue(b *testing.B) {
	image := map[string]events.DynamoDBAttributeValue{
		"id": events.NewStringAttribute("order-1"),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyValue(image, "id")
	}
}

func BenchmarkConvertImage(b *testing.B) {
	image := map[string]events.DynamoDBAttributeValue{
		"id":    events.NewStringAttribute("order-1"),
		"total": events.NewNumberAttribute("12.5"),
		"items": events.NewListAttribute([]events.DynamoDBAttributeValue{
			events.NewStringAttribute("a"),
		}),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ConvertImage(image)
	}
}
