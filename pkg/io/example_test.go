package io_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/overlay/pkg/gog"
	"github.com/matzehuels/overlay/pkg/io"
)

func ExampleWriteJSON() {
	p := gog.NewParser()
	p.SetHooks(&gog.Collector{})
	shapes, _ := p.Parse(strings.NewReader("start\n annotation Tower\n xy 0 0\n end\n"))

	doc := io.NewDocument(shapes, nil)
	doc.Shapes[0].Fields = map[string]io.Field{
		"textSize": doc.Shapes[0].Fields["textSize"],
	}
	if err := io.WriteJSON(doc, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "shapes": [
	//     {
	//       "kind": "annotation",
	//       "line": 1,
	//       "relative": true,
	//       "text": "Tower",
	//       "positions": [
	//         {
	//           "x": 0,
	//           "y": 0,
	//           "z": 0
	//         }
	//       ],
	//       "fields": {
	//         "textSize": {
	//           "value": 15,
	//           "explicit": false
	//         }
	//       }
	//     }
	//   ],
	//   "diagnostics": []
	// }
}
