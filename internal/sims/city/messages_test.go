package city

import "testing"

func TestDisasterMessagesCarryCoordinates(t *testing.T) {
	c := newTestCity(42)
	var got []Message
	c.OnMessage(func(m Message) { got = append(got, m) })

	flatten(c, 0, 0, 30, 30)
	c.DoTool(ToolResidential, 10, 10)
	c.MakeExplosion(10, 10)

	if len(got) == 0 {
		t.Fatal("no message delivered")
	}
	last := got[len(got)-1]
	if last.ID != MsgExplosionReported {
		t.Fatalf("message id = %d, want explosion", last.ID)
	}
	if !last.Important || !last.HasCoords || last.X != 10 || last.Y != 10 {
		t.Fatalf("explosion message lacks location: %+v", last)
	}
	if last.Text == "" {
		t.Fatal("message has no text")
	}
}

func TestAdvisoryCooldown(t *testing.T) {
	c := newTestCity(42)
	count := 0
	c.OnMessage(func(m Message) {
		if m.ID == MsgTaxTooHigh {
			count++
		}
	})
	c.SetCityTax(20)

	// Many passes inside one cooldown window yield a single advisory.
	for i := 0; i < 32; i++ {
		c.SimFrame()
	}
	if count != 1 {
		t.Fatalf("advisory fired %d times inside the cooldown, want 1", count)
	}
}

func TestNoCallbackNoPanic(t *testing.T) {
	c := newTestCity(42)
	c.SetCityTax(20)
	for i := 0; i < 100; i++ {
		c.SimFrame()
	}
	c.MakeTornado()
}
