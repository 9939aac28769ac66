// Package numconv provides an in-process Go client for the numconv
// conversions: fixed-width two's-complement bit strings and WGS84
// geodetic coordinates.
//
//	client, _ := numconv.New(
//	    numconv.WithMaxBitWidth(32),
//	    numconv.WithZonePolicy(numconv.ZoneStandard),
//	)
//	v, _ := client.Decode(ctx, "1101")   // -3
//	s, _ := client.Encode(ctx, -3, 8)    // "11111101"
//	p, _ := client.ToCartesian(ctx, numconv.GeodeticPoint{Lat: 55.75, Lon: 37.62})
//	z, _ := client.Zone(ctx, 60.39, 5.32) // 32N under the standard policy
//
// All methods are safe for concurrent use.
package numconv
