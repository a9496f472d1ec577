package locationinfo

import "testing"

func TestHandleLinePublishesTPVFix(t *testing.T) {
	c := NewClient("127.0.0.1:2947")
	sub := c.Subscribe()

	c.handleLine([]byte(`{"class":"TPV","mode":3,"lat":45.5,"lon":-122.6,"altMSL":30.0,"speed":1.5,"climb":0.1}`))

	select {
	case pos := <-sub:
		if pos.Lat != 45.5 || pos.Lon != -122.6 {
			t.Fatalf("got lat/lon %v/%v, want 45.5/-122.6", pos.Lat, pos.Lon)
		}
		if !pos.Active {
			t.Fatalf("Active = false, want true for mode 3")
		}
	default:
		t.Fatal("expected a published position")
	}

	if got := c.Position(); got.Lat != 45.5 {
		t.Fatalf("Position().Lat = %v, want 45.5", got.Lat)
	}
}

func TestHandleLineIgnoresNonTPVClasses(t *testing.T) {
	c := NewClient("127.0.0.1:2947")
	sub := c.Subscribe()

	c.handleLine([]byte(`{"class":"SKY"}`))

	select {
	case pos := <-sub:
		t.Fatalf("unexpected publish for non-TPV class: %+v", pos)
	default:
	}
}

func TestHandleLineIgnoresMalformedJSON(t *testing.T) {
	c := NewClient("127.0.0.1:2947")
	sub := c.Subscribe()

	c.handleLine([]byte(`not json`))

	select {
	case pos := <-sub:
		t.Fatalf("unexpected publish for malformed line: %+v", pos)
	default:
	}
}

func TestHandleLineModeBelow2IsInactive(t *testing.T) {
	c := NewClient("127.0.0.1:2947")
	sub := c.Subscribe()

	c.handleLine([]byte(`{"class":"TPV","mode":1,"lat":0,"lon":0}`))

	pos := <-sub
	if pos.Active {
		t.Fatal("Active = true, want false for mode 1 (no fix)")
	}
}
