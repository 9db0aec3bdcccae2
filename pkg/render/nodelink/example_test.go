package nodelink_test

import (
	"fmt"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	"github.com/c4dsl/c4dsl/pkg/model"
	"github.com/c4dsl/c4dsl/pkg/render/nodelink"
)

func ExampleToDOT() {
	ids := model.NewSequentialAllocator()
	ws, _ := dsl.NewWorkspace(dsl.WorkspaceConfig{Name: "Shop", Description: "Online shop"})
	user, _ := model.NewPerson(ids, model.PersonConfig{Name: "User", Description: "Buys things"})
	shop, _ := model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "Shop", Description: "Sells things"})
	_ = ws.AddPerson(user)
	_ = ws.AddSoftwareSystem(shop)
	rel, _ := model.NewRelationship(model.RelationshipConfig{
		Source: model.Ref(user), Target: model.Ref(shop), Description: "Browses",
	})
	_ = ws.AddRelationship(rel)

	dot, err := nodelink.ToDOT(ws, nodelink.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(dot)
	// Output:
	// digraph G {
	//   rankdir=TB;
	//   bgcolor="transparent";
	//   compound=true;
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
	//   ranksep=0.5;
	//   nodesep=0.3;
	//
	//   "u" [label="User", shape=ellipse];
	//   "s" [label="Shop"];
	//
	//   "u" -> "s" [label="Browses"];
	// }
}
