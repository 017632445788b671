package rust_test

import (
	"errors"
	"fmt"

	"github.com/okra-platform/rustgen/internal/rust"
)

func Example() {
	point := rust.NewStruct("Point").
		SetPub(true).
		AddAttribute(rust.MustAttribute("#[derive(Debug)]")).
		AddField(rust.NewField("x", "f64").SetPub(true))

	origin := rust.NewImpl("Point").
		AddFunction(rust.NewFunction("origin").
			SetPub(true).
			SetReturnType("Self").
			SetBody("Self { x: 0.0 }"))

	m := rust.NewModule("shapes").
		SetPub(true).
		AddStruct(point).
		AddImpl(origin)

	fmt.Print(m.Generate())
	// Output:
	// pub mod shapes
	// {
	//     #[derive(Debug)]
	//     pub struct Point
	//     {
	//         pub x: f64,
	//     }
	//
	//     impl Point
	//     {
	//         pub fn origin() -> Self
	//         {
	//             Self { x: 0.0 }
	//         }
	//     }
	// }
}

func ExampleParseAttribute() {
	inner, _ := rust.ParseAttribute("#![allow(dead_code)]")
	outer, _ := rust.ParseAttribute("#[derive(Clone)]")
	_, err := rust.ParseAttribute("derive(Clone)")

	fmt.Println(inner.Kind(), outer.Kind())
	fmt.Println(errors.Is(err, rust.ErrInvalidAttributeSyntax))
	// Output:
	// scope item
	// true
}

func ExampleGenerateGenerics() {
	fmt.Print(rust.GenerateGenerics(
		rust.NewGeneric("T").AddTraitBounds("Clone", "Debug"),
		rust.NewGeneric("S"),
	))
	// Output:
	// <T, S>
	//     where
	//         T: Clone + Debug,
	//         S: ,
}
