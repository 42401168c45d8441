// Package mygit is a content-addressed object database laid out like git's
// loose objects.
//
// An object is a kind label ("blob", "tree", "commit" or any other string)
// and a payload. Its canonical encoding is
//
//	<kind> <decimal payload length>\x00<payload>
//
// and its digest is the lowercase hex SHA-1 of that encoding. Persisted
// objects are zlib-compressed and stored at objects/<2 hex>/<38 hex>
// below a metadata root.
//
// Basic usage:
//
//	root, _ := mygit.CreateRoot("/path/to/work")
//
//	// Hash only
//	d := mygit.HashObject(mygit.KindBlob, []byte("Hello, World!"))
//
//	// Hash and store
//	db, _ := mygit.Open(root, mygit.WithLogger(logger))
//	defer db.Close()
//	d, _ = db.Write(mygit.KindBlob, []byte("Hello, World!"))
//
//	// Read back
//	obj, _ := db.Read(d)
//	fmt.Println(obj.Kind, len(obj.Payload))
//
//	// Find the root from anywhere in the work tree
//	root, ok, _ := mygit.LocateRoot("/path/to/work/src/pkg")
//
// Roots are always passed explicitly; the package keeps no notion of a
// current repository.
package mygit
