package binding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per form:
//
//	[<prefix>:]<module>:values:<form>   field -> JSON value
//	[<prefix>:]<module>:errors:<form>   field -> JSON value
//
// The module segment is always written, empty for the root module, so a
// module named "values" cannot reach into the root keyspace.
type RedisStore struct {
	db        redis.UniversalClient
	prefix    string
	scanCount int64
}

// NewRedisStore creates a store over an existing client.
// scanCount is the COUNT hint used while listing forms; zero means 100.
func NewRedisStore(client redis.UniversalClient, prefix string, scanCount int64) *RedisStore {
	if scanCount <= 0 {
		scanCount = 100
	}
	return &RedisStore{db: client, prefix: prefix, scanCount: scanCount}
}

// Commit applies setFieldValue, setFieldErrors or resetForm.
func (s *RedisStore) Commit(ctx context.Context, mutation string, payload FieldValue) error {
	module, op := splitName(mutation)
	if err := validModule(module); err != nil {
		return err
	}

	switch op {
	case MutationSetFieldValue, MutationSetFieldErrors:
		raw, err := json.Marshal(payload.Value)
		if err != nil {
			return errors.Join(ErrFailedToEncodeValue, err)
		}
		key := s.Key(module, kindFor(op), payload.Form)
		return s.db.HSet(ctx, key, payload.Field, raw).Err()
	case MutationResetForm:
		return s.db.Del(ctx,
			s.Key(module, "values", payload.Form),
			s.Key(module, "errors", payload.Form),
		).Err()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMutation, mutation)
	}
}

// Get answers formValues and formErrors by scanning the module keyspace.
func (s *RedisStore) Get(ctx context.Context, getter string) (FormValues, error) {
	module, op := splitName(getter)
	if err := validModule(module); err != nil {
		return nil, err
	}

	var kind string
	switch op {
	case GetterFormValues:
		kind = "values"
	case GetterFormErrors:
		kind = "errors"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGetter, getter)
	}

	keyPrefix := s.Key(module, kind, "")
	out := FormValues{}

	iter := s.db.Scan(ctx, 0, keyPrefix+"*", s.scanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		fields, err := s.db.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}

		form := make(map[string]any, len(fields))
		for field, raw := range fields {
			var v any
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				return nil, errors.Join(ErrFailedToDecodeValue, err)
			}
			form[field] = v
		}
		out[strings.TrimPrefix(key, keyPrefix)] = form
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Key builds the hash key for a form. An empty form yields the scan prefix.
func (s *RedisStore) Key(module, kind, form string) string {
	key := strings.Join([]string{module, kind, form}, ":")
	if s.prefix != "" {
		key = s.prefix + ":" + key
	}
	return key
}

// validModule rejects module names that would split into extra key segments
// or act as SCAN patterns.
func validModule(module string) error {
	if strings.ContainsAny(module, ":*?[]\\") {
		return fmt.Errorf("%w: %q", ErrInvalidModule, module)
	}
	return nil
}

func kindFor(op string) string {
	if op == MutationSetFieldErrors {
		return "errors"
	}
	return "values"
}
