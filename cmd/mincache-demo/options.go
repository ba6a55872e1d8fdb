package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/yuadsl3010/mincache"
)

const ttlSuffix = ":ttl"

// Opts represents the config given by users.
type Opts struct {
	Key    string        `short:"k" long:"key" default:"key1" description:"key to put and read back"`
	Value  string        `short:"v" long:"value" default:"my value" description:"value stored under the key"`
	TTL    uint64        `long:"ttl" default:"1" description:"ttl in seconds of the expiring copy of the key"`
	Wait   time.Duration `long:"wait" default:"0s" description:"sleep before reading the expiring copy again, e.g. 1500ms"`
	Strict bool          `long:"strict" description:"compare the stored key on every read"`
}

func (o *Opts) Validate() error {
	if o.Key == "" {
		return errors.New("key cannot be empty")
	}

	// the expiring copy is stored under Key+ttlSuffix
	if len(o.Key)+len(ttlSuffix) > mincache.MAX_KEY_LEN {
		return fmt.Errorf("key is %d bytes, at most %d allowed", len(o.Key), mincache.MAX_KEY_LEN-len(ttlSuffix))
	}

	if o.Wait < 0 {
		return fmt.Errorf("wait cannot be negative: %s", o.Wait)
	}
	return nil
}
