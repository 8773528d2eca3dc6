// Package id hands out the int64 primary keys used by every persisted entity.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init prepares the generator for the given node. Call it once at startup,
// before the first New; later calls are no-ops.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a fresh snowflake ID. IDs sort by creation time and stay unique
// across replicas as long as each replica gets its own node ID.
func New() int64 {
	return node.Generate().Int64()
}
