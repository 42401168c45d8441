package mygit_test

import (
	"fmt"
	"log"
	"os"

	"github.com/aweris/mygit"
)

func ExampleHashObject() {
	d := mygit.HashObject(mygit.KindBlob, []byte("Hello, World!"))
	fmt.Println(d)
	// Output: b45ef6fec89518d314f546fd6c3025367b721684
}

func ExampleOpen() {
	work, err := os.MkdirTemp("", "mygit-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(work)

	root, err := mygit.CreateRoot(work)
	if err != nil {
		log.Fatal(err)
	}

	db, err := mygit.Open(root)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Store content
	d, _ := db.Write(mygit.KindBlob, []byte("Hello, World!"))
	fmt.Println("stored:", d)

	// Load it back
	obj, _ := db.Read(d)
	fmt.Printf("%s %d %s\n", obj.Kind, len(obj.Payload), obj.Payload)

	// Output:
	// stored: b45ef6fec89518d314f546fd6c3025367b721684
	// blob 13 Hello, World!
}
