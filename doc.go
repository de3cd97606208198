// Package holder provides a lazily-populated, hierarchical namespace for
// configuration values.
//
// A Node never fails a read of an ordinary name: asking for a name that does
// not exist yet creates an empty child Node, stores it, and returns it. Deep
// paths can therefore be written without declaring their parents first.
//
// Quick Start:
//
//	db := holder.MustResolve("db")
//	db.MustChild("pool").Set("size", 10)
//
//	size, _ := db.GetPath("pool.size") // 10
//
//	holder.Default.Set("debug", true)
//
// Named top-level Nodes are handed out by a Registry. The package keeps one
// process-wide Registry, reachable through Global and Resolve, and one unnamed
// Node, Default, that is always available as a scratch namespace.
//
// Reserved Names:
// Names beginning with an underscore are bookkeeping names. Set stores them
// outside the visible mapping and Get refuses them with ErrAttributeNotFound,
// so an underscore-prefixed configuration key can never be read back. This
// applies to every such name, not only the ones the package itself uses.
//
// Introspection:
//
//	flat, _ := db.Flatten()          // {"pool.size": 10}
//	snap, _ := holder.NewSnapshot(db)
//	v, _ := snap.Get("size", "pool") // qualified lookup with fallback
//	_ = db.Dump(os.Stdout, "toml")
//
// Thread Safety:
// Each Node and each Registry guards its own map with a read-write mutex.
// Get takes the write lock only when it has to create a child, so concurrent
// first reads of a name still produce exactly one child Node. Operations that
// span several Nodes (paths, snapshots, dumps) are not atomic as a whole.
package holder
