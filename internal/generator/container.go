package generator

import "fmt"

func init() {
	register("container.object.json", genJSONObject)
	register("container.list.csv_row", genCSVRow)
}

func genJSONObject(g *Generator, _ string) string {
	return fmt.Sprintf(`{"id":%d,"name":"%s","active":%t}`,
		g.rng.Intn(10000), g.randomWord(), g.rng.Intn(2) == 0)
}

func genCSVRow(g *Generator, _ string) string {
	return fmt.Sprintf("%d,%s,%s", g.rng.Intn(10000), g.randomWord(), g.randomWord())
}
