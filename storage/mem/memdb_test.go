package mem

import (
	"bytes"
	"testing"
)

func TestStore_New(t *testing.T) {
	t.Run("should create non-nil store", func(t *testing.T) {
		s := New()

		if s == nil {
			t.Errorf("expected non-nil store, got nil")
		}
	})
}

func TestStore_Close(t *testing.T) {
	t.Run("should close store", func(t *testing.T) {
		s := New()

		if err := s.Close(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("consecutive calls should fail after close", func(t *testing.T) {
		s := New()

		if err := s.Close(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := s.Has([]byte("some_key")); err == nil {
			t.Errorf("expected error, got nil")
		}
	})
}

func TestStore_Has(t *testing.T) {
	t.Run("should not find key if no key in store", func(t *testing.T) {
		s := New()

		exists, err := s.Has([]byte("some_key"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if exists {
			t.Errorf("expected key to not exist, got true")
		}
	})

	t.Run("should find existing key", func(t *testing.T) {
		s := New()

		if err := s.Put([]byte("existing_key"), []byte("existing_value")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		exists, err := s.Has([]byte("existing_key"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !exists {
			t.Errorf("expected key to exist, got false")
		}
	})
}

func TestStore_Get(t *testing.T) {
	t.Run("should return error for non-existing key", func(t *testing.T) {
		s := New()

		val, err := s.Get([]byte("non_existing_key"))
		if err == nil {
			t.Errorf("expected error, got nil")
		}
		if val != nil {
			t.Errorf("expected val to be nil, got %v", val)
		}
	})

	t.Run("should return val for existing key", func(t *testing.T) {
		s := New()

		key := []byte("key")
		val := []byte("val")
		if err := s.Put(key, val); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		res, err := s.Get(key)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if !bytes.Equal(res, val) {
			t.Errorf("expected val to be %v, got %v", val, res)
		}
	})
}

func TestStore_Put(t *testing.T) {
	t.Run("should override val for existing key", func(t *testing.T) {
		s := New()

		key := []byte("key")
		if err := s.Put(key, []byte("first")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := s.Put(key, []byte("second")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		res, err := s.Get(key)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !bytes.Equal(res, []byte("second")) {
			t.Errorf("expected val to be 'second', got %v", res)
		}
	})

	t.Run("should fail to put after close", func(t *testing.T) {
		s := New()
		if err := s.Close(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := s.Put([]byte("key"), []byte("val")); err == nil {
			t.Errorf("expected error, got nil")
		}
	})
}
