package main

import (
	"fmt"
	"image/color"

	"github.com/smasonuk/gosiebox"
	"github.com/smasonuk/gosiebox/box"
	"github.com/smasonuk/gosiebox/config"
)

// model is the scene tree of one shelf box. Nodes that move are named
// after the animator's pose keys.
type model struct {
	root *gosiebox.Node
	col  color.RGBA
	// orb glows with the animator's light.
	orb *gosiebox.Node
	// tint takes its colour from palette, indexed by the box accent.
	tint    *gosiebox.Node
	palette []color.RGBA
	// reveal is shown only while the box is open.
	reveal *gosiebox.Node
}

func cuboid(name string, sx, sy, sz float64, col color.RGBA) *gosiebox.Node {
	return gosiebox.NewNode(name, gosiebox.NewCuboid(sx, sy, sz, col))
}

func newModel(variant string, lux config.LuxuryPalette) (*model, error) {
	switch variant {
	case "scrollable":
		return scrollableModel(), nil
	case "luxury":
		return luxuryModel(lux), nil
	case "product":
		return productModel(), nil
	case "neon":
		m := liddedModel("#111111", "#00FFFF", [3]float64{1, 1, 1}, 0, 0.2)
		m.tint = m.root.Find("lid-panel")
		for _, hex := range box.NeonPalette {
			m.palette = append(m.palette, gosiebox.MustHexColor(hex))
		}
		return m, nil
	case "holographic":
		return liddedModel("#00ffaa", "#88ccff", [3]float64{1, 1.2, 1}, 0, 0.1), nil
	case "wooden":
		return liddedModel("#8B4513", "#A0522D", [3]float64{1.4, 0.9, 1}, 0, 0.1), nil
	case "glass":
		return liddedModel("#a0d8ef", "#ff88cc", [3]float64{1, 1.1, 1}, 0, 0.05), nil
	case "basic":
		return basicModel(), nil
	case "geometric":
		return geometricModel(), nil
	}
	return nil, fmt.Errorf("boxshow: no model for %q", variant)
}

// scrollableModel is a base tray, four walls, a lid and a glowing orb.
// Part nodes rest where the part sits; the animator moves them from there.
func scrollableModel() *model {
	col := gosiebox.MustHexColor("#4d61ff")
	white := gosiebox.MustHexColor("#ffffff")

	orb := gosiebox.NewNode("orb", gosiebox.NewUVSphere(0.5, 16, 10, white, col, 2))
	orb.Emissive = true

	deco := cuboid("lid-decoration", 0.8, 0.05, 0.8, white).At(0, 0.45, 0)
	deco.Emissive = true
	deco.Glow = 0.7

	lid := gosiebox.NewNode(box.Lid.String(), nil).Add(
		cuboid("lid-panel", 1.5, 0.1, 1.5, col).At(0, 0.4, 0),
		deco,
	)
	walls := gosiebox.NewNode("walls", nil).At(0, 0.7, 0).Add(
		cuboid(box.LeftFlap.String(), 0.05, 0.8, 1.5, col).At(-0.75, 0, 0),
		cuboid(box.RightFlap.String(), 0.05, 0.8, 1.5, col).At(0.75, 0, 0),
		cuboid(box.FrontFlap.String(), 1.5, 0.8, 0.05, col).At(0, 0, 0.75),
		cuboid(box.BackFlap.String(), 1.5, 0.8, 0.05, col).At(0, 0, -0.75),
		lid,
	)

	root := gosiebox.NewNode("box", nil).Add(
		cuboid("base", 1.5, 0.3, 1.5, col),
		gosiebox.NewNode(box.Inner.String(), nil).Add(orb),
		walls,
	)
	return &model{root: root, col: col, orb: orb}
}

// liddedModel is a body with a single "lid" hinge. Hinge poses are
// absolute, so the lid node rests at the origin.
func liddedModel(bodyHex, lidHex string, body [3]float64, bodyY, lidHeight float64) *model {
	col := gosiebox.MustHexColor(bodyHex)
	root := gosiebox.NewNode("box", nil).Add(
		cuboid("body", body[0], body[1], body[2], col).At(0, bodyY, 0),
		gosiebox.NewNode("lid", nil).Add(
			cuboid("lid-panel", body[0]+0.05, lidHeight, body[2]+0.05, gosiebox.MustHexColor(lidHex)),
		),
	)
	return &model{root: root, col: col}
}

// basicModel splits the body into four corner blocks that slide apart on
// hover.
func basicModel() *model {
	col := gosiebox.MustHexColor("#5599ff")
	root := gosiebox.NewNode("box", nil)
	corners := []struct {
		name string
		x, z float64
	}{
		{"top-left", -0.25, -0.25},
		{"top-right", 0.25, -0.25},
		{"bottom-left", -0.25, 0.25},
		{"bottom-right", 0.25, 0.25},
	}
	for _, c := range corners {
		root.Add(gosiebox.NewNode(c.name, nil).Add(
			cuboid(c.name+"-block", 0.5, 0.8, 0.5, col).At(c.x, 0, c.z),
		))
	}
	root.Add(gosiebox.NewNode("lid", nil).Add(
		cuboid("lid-panel", 1.05, 0.1, 1.05, gosiebox.MustHexColor("#444444")),
	))
	return &model{root: root, col: col}
}

// luxuryModel is a wooden chest with trim bands, a lined interior and a
// lid set with an inlay and a gem.
func luxuryModel(p config.LuxuryPalette) *model {
	gem := gosiebox.NewNode("gem", gosiebox.NewUVSphere(0.2, 4, 2, p.Gem, p.Gem, 1)).At(0, 0.22, 0)
	gem.Emissive = true
	gem.Glow = 0.8

	root := gosiebox.NewNode("box", nil).Add(
		cuboid("body", 1.5, 1.6, 1.5, p.Wood),
		cuboid("lining", 1.4, 0.02, 1.4, p.Interior).At(0, 0.8, 0),
		cuboid("trim-top", 1.52, 0.08, 1.52, p.Trim).At(0, 0.8, 0),
		cuboid("trim-middle", 1.52, 0.08, 1.52, p.Trim),
		gosiebox.NewNode("lid", nil).Add(
			cuboid("lid-panel", 1.55, 0.2, 1.55, p.Wood),
			cuboid("inlay", 1.4, 0.05, 1.4, p.Trim).At(0, 0.1, 0),
			gem,
		),
	)
	return &model{root: root, col: p.Wood}
}

// productModel is a plain carton whose lid swings back on click to show
// the product inside.
func productModel() *model {
	col := gosiebox.MustHexColor("#7A5195")
	insert := cuboid("insert", 0.4, 0.1, 0.4, gosiebox.MustHexColor("#FFD166")).At(0, 0.65, 0)
	insert.Hidden = true

	root := gosiebox.NewNode("box", nil).Add(
		cuboid("main", 1.5, 0.6, 1, col).At(0, 0.3, 0),
		cuboid("interior", 1.4, 0.02, 0.9, gosiebox.MustHexColor("#F2F2F2")).At(0, 0.6, 0),
		insert,
		gosiebox.NewNode("lid", nil).Add(
			cuboid("lid-panel", 1.5, 0.1, 1, col),
		),
	)
	return &model{root: root, col: col, reveal: insert}
}

// geometricModel is a body wrapped in a top panel, four side panels and
// eight corner modules. Every part is sized for a unit body; the animator
// scales and places them.
func geometricModel() *model {
	primary := gosiebox.MustHexColor("#3DA5D9")
	secondary := gosiebox.MustHexColor("#73BFB8")
	accent := gosiebox.MustHexColor("#2EC4B6")

	root := gosiebox.NewNode("box", nil).Add(
		gosiebox.NewNode("body", nil).Add(cuboid("core", 0.9, 0.9, 0.9, gosiebox.MustHexColor("#EFF1F3"))),
		gosiebox.NewNode("top", nil).Add(cuboid("top-panel", 0.9, 0.05, 0.9, gosiebox.MustHexColor("#FEC601"))),
	)
	for i := 0; i < box.ModularSides; i++ {
		col := primary
		if i%2 == 1 {
			col = secondary
		}
		root.Add(gosiebox.NewNode(fmt.Sprintf("side-%d", i), nil).Add(
			cuboid(fmt.Sprintf("side-%d-panel", i), 0.6, 0.8, 0.05, col),
		))
	}
	// an octahedron, shared by every module
	gem := gosiebox.NewUVSphere(1, 4, 2, accent, accent, 1)
	for i := 0; i < box.ModularModules; i++ {
		root.Add(gosiebox.NewNode(fmt.Sprintf("module-%d", i), gem))
	}
	return &model{root: root, col: primary}
}
