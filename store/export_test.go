package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SetClock replaces the Store's time source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// FakeAPI is an in-memory stand-in for the DynamoDB client. It understands
// the request shapes the Store sends and nothing more.
type FakeAPI struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	calls map[string]int

	// RejectBatches makes the next n BatchWriteItem calls return every
	// request as unprocessed.
	RejectBatches int

	// Err, when set, is returned by every call.
	Err error
}

// NewFakeAPI creates an empty FakeAPI.
func NewFakeAPI() *FakeAPI {
	return &FakeAPI{
		items: make(map[string]map[string]types.AttributeValue),
		calls: make(map[string]int),
	}
}

// Calls returns how often op was invoked.
func (f *FakeAPI) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Item returns the raw item stored under pk and sk.
func (f *FakeAPI) Item(pk, sk string) map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[pk+"|"+sk]
}

// Len returns the number of stored items.
func (f *FakeAPI) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func itemID(key map[string]types.AttributeValue) string {
	return stringAttr(key, "pk") + "|" + stringAttr(key, "sk")
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *FakeAPI) begin(op string) error {
	f.mu.Lock()
	f.calls[op]++
	return f.Err
}

func (f *FakeAPI) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	err := f.begin("GetItem")
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: f.items[itemID(params.Key)]}, nil
}

func (f *FakeAPI) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	err := f.begin("PutItem")
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	f.items[itemID(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *FakeAPI) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	err := f.begin("DeleteItem")
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	delete(f.items, itemID(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *FakeAPI) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	err := f.begin("Query")
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	pk := stringAttr(params.ExpressionAttributeValues, ":pk")
	var now int64
	filtered := params.FilterExpression != nil
	if filtered {
		n, ok := params.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN)
		if !ok {
			return nil, errors.New("fake: filter without :now")
		}
		now, _ = strconv.ParseInt(n.Value, 10, 64)
	}

	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if stringAttr(item, "pk") != pk {
			continue
		}
		if filtered {
			if ttl, ok := item["ttl"].(*types.AttributeValueMemberN); ok {
				if v, _ := strconv.ParseInt(ttl.Value, 10, 64); v <= now {
					continue
				}
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return stringAttr(out[i], "sk") < stringAttr(out[j], "sk")
	})
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *FakeAPI) BatchWriteItem(_ context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	err := f.begin("BatchWriteItem")
	defer f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	for table, requests := range params.RequestItems {
		if len(requests) > 25 {
			return nil, errors.New("fake: too many items in batch")
		}
		if f.RejectBatches > 0 {
			f.RejectBatches--
			return &dynamodb.BatchWriteItemOutput{
				UnprocessedItems: map[string][]types.WriteRequest{table: requests},
			}, nil
		}
		for _, req := range requests {
			switch {
			case req.PutRequest != nil:
				f.items[itemID(req.PutRequest.Item)] = req.PutRequest.Item
			case req.DeleteRequest != nil:
				delete(f.items, itemID(req.DeleteRequest.Key))
			}
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

var _ API = (*FakeAPI)(nil)
