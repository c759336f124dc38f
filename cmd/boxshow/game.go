package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/gosiebox"
	"github.com/smasonuk/gosiebox/box"
	"github.com/smasonuk/gosiebox/config"
	"github.com/smasonuk/gosiebox/loop"
)

const (
	shelfSpacing = 2.5
	hoverScale   = 0.1
	// panStep moves the camera per wheel notch when no box takes the wheel.
	panStep = 0.5
)

var background = color.RGBA{R: 12, G: 14, B: 24, A: 255}

// shelfBox ties one animator to its scene object.
type shelfBox struct {
	variant string
	anim    box.Animator
	model   *model
	obj     *gosiebox.Object
	sub     *loop.Subscription
	light   *gosiebox.PointLight
}

type Game struct {
	cfg   *config.Config
	world *gosiebox.World
	loop  *loop.Loop
	boxes []*shelfBox
	last  time.Time
}

func NewGame(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg, world: gosiebox.NewWorld(), loop: loop.New()}

	n := len(cfg.Variants)
	dist := 4 + 1.6*float64(n)
	g.world.AddCamera(gosiebox.NewCameraLookAt(
		mgl64.Vec3{0, 1.5, dist}, mgl64.Vec3{0, 0.3, 0}, mgl64.Vec3{0, 1, 0}))

	if err := g.fill(); err != nil {
		return nil, err
	}
	log.Printf("boxshow: %d boxes on the shelf, integrator %s", n, cfg.Method())
	return g, nil
}

// fill builds and mounts one box per configured variant. On error it
// closes the loop, unmounting whatever was already mounted.
func (g *Game) fill() (err error) {
	defer func() {
		if err != nil {
			g.loop.Close()
		}
	}()

	lux, err := g.cfg.Luxury.Palette()
	if err != nil {
		return err
	}
	opts := g.cfg.VariantOptions()
	n := len(g.cfg.Variants)
	for i, variant := range g.cfg.Variants {
		a, err := box.NewVariant(variant, opts)
		if err != nil {
			return err
		}
		m, err := newModel(variant, lux)
		if err != nil {
			return err
		}

		target := fmt.Sprintf("%s-%d", variant, i)
		x := (float64(i) - float64(n-1)/2) * shelfSpacing
		b := &shelfBox{
			variant: variant,
			anim:    a,
			model:   m,
			obj:     g.world.AddObject(target, m.root, x, 0, 0),
		}
		if b.sub, err = box.Mount(g.loop, target, a); err != nil {
			return err
		}
		log.Printf("boxshow: mounted %s at x=%.2f", target, x)
		if m.orb != nil {
			b.light = &gosiebox.PointLight{Col: m.col, Range: 5}
			g.world.AddLight(b.light)
		}
		b.apply()
		g.boxes = append(g.boxes, b)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	cx, cy := ebiten.CursorPosition()
	under := g.world.ObjectAt(float32(cx), float32(cy))
	if err := g.loop.Pointer(under); err != nil {
		return err
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.loop.Click(under); err != nil {
			return err
		}
	}

	// ebiten reports wheel up as positive; pages scroll down on positive deltaY
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		consumed, err := g.loop.Wheel(-yoff * g.cfg.WheelLineHeight)
		if err != nil {
			return err
		}
		if !consumed {
			g.world.Camera().Pan(0, 0, -yoff*panStep)
		}
	}

	if err := g.loop.Frame(dt); err != nil {
		return err
	}
	for _, b := range g.boxes {
		b.apply()
	}
	return nil
}

// apply copies the animator's state onto the scene tree.
func (b *shelfBox) apply() {
	pose := b.anim.Pose()
	for name, tr := range pose {
		if name == box.RootPart {
			continue
		}
		if n := b.model.root.Find(name); n != nil {
			n.Anim = gosiebox.ToGoSieMatrix(tr.Mat4())
		}
	}

	float := box.Float(b.anim.Idle(), box.FloatFor(b.variant))
	if root, ok := pose[box.RootPart]; ok {
		float = float.Then(root)
	}

	glow := 0.0
	switch a := b.anim.(type) {
	case *box.Scrollable:
		glow = a.Glow()
		s := 1 + hoverScale*glow
		float.Scale = mgl64.Vec3{s, s, s}
	case *box.Toggle:
		glow = a.Glow()
		if b.model.tint != nil && len(b.model.palette) > 0 {
			c := b.model.palette[a.Accent()%len(b.model.palette)]
			b.model.tint.Tint = &c
		}
		if b.model.reveal != nil {
			b.model.reveal.Hidden = a.State() != box.Open
		}
	}
	b.model.root.Anim = gosiebox.ToGoSieMatrix(float.Mat4())
	b.obj.Highlight = glow

	if b.light != nil {
		light := b.anim.Light()
		b.model.orb.Glow = light
		b.light.Intensity = light
		b.light.Position = b.obj.Position.Add(pose[box.Inner.String()].Position)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.world.PaintObjects(screen)

	for _, b := range g.boxes {
		s, ok := b.anim.(*box.Scrollable)
		if !ok {
			continue
		}
		primary, secondary := s.Hint()
		r, visible := g.world.Bounds(b.sub.Target())
		if primary == "" || !visible {
			continue
		}
		x, y := int(r.Min.X), int(r.Max.Y)+8
		ebitenutil.DebugPrintAt(screen, primary, x, y)
		if secondary != "" {
			ebitenutil.DebugPrintAt(screen, secondary, x, y+16)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f  hovered: %s", ebiten.ActualTPS(), g.loop.Hovered()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Close unmounts every box.
func (g *Game) Close() error {
	return g.loop.Close()
}
