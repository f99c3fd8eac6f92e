package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/John-Robertt/rawsync/internal/domain"
)

func TestProgressBar_NoBarOnMismatch(t *testing.T) {
	var buf bytes.Buffer
	pb := newProgressBar(&buf)

	pb.OnScanDone(2, 1, time.Millisecond)
	pb.OnPairDone(1, 1, domain.ItemResult{})
	pb.Wait()

	assert.Nil(t, pb.p)
	assert.Empty(t, buf.String())
}

func TestProgressBar_AbortedRunDoesNotBlock(t *testing.T) {
	var buf bytes.Buffer
	pb := newProgressBar(&buf)

	pb.OnScanDone(3, 3, time.Millisecond)
	pb.OnPairDone(1, 3, domain.ItemResult{Status: domain.StatusRenamed})

	done := make(chan struct{})
	go func() {
		pb.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait 在中途失败后阻塞")
	}
}
