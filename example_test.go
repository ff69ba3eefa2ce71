package md2wiki_test

import (
	"context"
	"fmt"

	md2wiki "github.com/alnah/go-md2wiki"
)

func ExampleService_Convert() {
	svc := md2wiki.New()

	out, err := svc.Convert(context.Background(), md2wiki.Input{
		Markdown: "# Release Notes\n\n```console\nmake deploy\n```",
		Dialect:  md2wiki.DialectJira,
	})
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// h1. Release Notes
	//
	// {code:bash}
	// make deploy
	// {code}
}

func ExampleService_Convert_confluence() {
	svc := md2wiki.New()

	out, err := svc.Convert(context.Background(), md2wiki.Input{
		Markdown: "## Install\n\n```sh\ngo install\n```",
		Dialect:  md2wiki.DialectConfluence,
		TOC:      true,
	})
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// {toc}
	//
	// h2. Install
	//
	// {code:language=bash}
	// go install
	// {code}
}
