package vec

// Vec2 is a 2-component vector of 32-bit floats.
type Vec2 struct {
	X, Y float32
}

// V2 constructs a Vec2 from two components.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length2() float32 { return v.Dot(v) }
