package render

// Marching cubes lookup tables.
//
// Corner i of a cell sits at mcCornerOffsets[i] in lattice units. Bit i of a
// case index is set when the field sample at corner i is positive. Each entry of
// mcTriangleTable lists edge identifiers, three per triangle, wound counter-clockwise
// when viewed from the positive side of the field. Ambiguous faces always keep
// their positive corners apart, which makes adjacent cells agree on shared faces.

const marchingCubesMaxTriangles = 5

var mcCornerOffsets = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// mcEdgeCorners lists the corners of each edge, the corner nearest the lattice
// origin first. Shared edges of neighbouring cells are then interpolated in the
// same direction and yield bit identical vertices.
var mcEdgeCorners = [12][2]uint8{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
	{4, 5}, {5, 6}, {7, 6}, {4, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var mcTriangleTable = [256][]uint8{
	{},                                                 // 0x00
	{0, 8, 3},                                          // 0x01
	{0, 1, 9},                                          // 0x02
	{1, 9, 8, 1, 8, 3},                                 // 0x03
	{1, 2, 10},                                         // 0x04
	{0, 8, 3, 1, 2, 10},                                // 0x05
	{0, 2, 10, 0, 10, 9},                               // 0x06
	{2, 10, 9, 2, 9, 8, 2, 8, 3},                       // 0x07
	{2, 3, 11},                                         // 0x08
	{0, 8, 11, 0, 11, 2},                               // 0x09
	{0, 1, 9, 2, 3, 11},                                // 0x0a
	{1, 9, 8, 1, 8, 11, 1, 11, 2},                      // 0x0b
	{1, 3, 11, 1, 11, 10},                              // 0x0c
	{0, 8, 11, 0, 11, 10, 0, 10, 1},                    // 0x0d
	{0, 3, 11, 0, 11, 10, 0, 10, 9},                    // 0x0e
	{8, 11, 10, 8, 10, 9},                              // 0x0f
	{4, 7, 8},                                          // 0x10
	{0, 4, 7, 0, 7, 3},                                 // 0x11
	{0, 1, 9, 4, 7, 8},                                 // 0x12
	{1, 9, 4, 1, 4, 7, 1, 7, 3},                        // 0x13
	{1, 2, 10, 4, 7, 8},                                // 0x14
	{0, 4, 7, 0, 7, 3, 1, 2, 10},                       // 0x15
	{0, 2, 10, 0, 10, 9, 4, 7, 8},                      // 0x16
	{2, 10, 9, 2, 9, 4, 2, 4, 7, 2, 7, 3},              // 0x17
	{2, 3, 11, 4, 7, 8},                                // 0x18
	{0, 4, 7, 0, 7, 11, 0, 11, 2},                      // 0x19
	{0, 1, 9, 2, 3, 11, 4, 7, 8},                       // 0x1a
	{1, 9, 4, 1, 4, 7, 1, 7, 11, 1, 11, 2},             // 0x1b
	{1, 3, 11, 1, 11, 10, 4, 7, 8},                     // 0x1c
	{0, 4, 7, 0, 7, 11, 0, 11, 10, 0, 10, 1},           // 0x1d
	{0, 3, 11, 0, 11, 10, 0, 10, 9, 4, 7, 8},           // 0x1e
	{4, 7, 11, 4, 11, 10, 4, 10, 9},                    // 0x1f
	{4, 9, 5},                                          // 0x20
	{0, 8, 3, 4, 9, 5},                                 // 0x21
	{0, 1, 5, 0, 5, 4},                                 // 0x22
	{1, 5, 4, 1, 4, 8, 1, 8, 3},                        // 0x23
	{1, 2, 10, 4, 9, 5},                                // 0x24
	{0, 8, 3, 1, 2, 10, 4, 9, 5},                       // 0x25
	{0, 2, 10, 0, 10, 5, 0, 5, 4},                      // 0x26
	{2, 10, 5, 2, 5, 4, 2, 4, 8, 2, 8, 3},              // 0x27
	{2, 3, 11, 4, 9, 5},                                // 0x28
	{0, 8, 11, 0, 11, 2, 4, 9, 5},                      // 0x29
	{0, 1, 5, 0, 5, 4, 2, 3, 11},                       // 0x2a
	{1, 5, 4, 1, 4, 8, 1, 8, 11, 1, 11, 2},             // 0x2b
	{1, 3, 11, 1, 11, 10, 4, 9, 5},                     // 0x2c
	{0, 8, 11, 0, 11, 10, 0, 10, 1, 4, 9, 5},           // 0x2d
	{0, 3, 11, 0, 11, 10, 0, 10, 5, 0, 5, 4},           // 0x2e
	{4, 8, 11, 4, 11, 10, 4, 10, 5},                    // 0x2f
	{5, 7, 8, 5, 8, 9},                                 // 0x30
	{0, 9, 5, 0, 5, 7, 0, 7, 3},                        // 0x31
	{0, 1, 5, 0, 5, 7, 0, 7, 8},                        // 0x32
	{1, 5, 7, 1, 7, 3},                                 // 0x33
	{1, 2, 10, 5, 7, 8, 5, 8, 9},                       // 0x34
	{0, 9, 5, 0, 5, 7, 0, 7, 3, 1, 2, 10},              // 0x35
	{0, 2, 10, 0, 10, 5, 0, 5, 7, 0, 7, 8},             // 0x36
	{2, 10, 5, 2, 5, 7, 2, 7, 3},                       // 0x37
	{2, 3, 11, 5, 7, 8, 5, 8, 9},                       // 0x38
	{0, 9, 5, 0, 5, 7, 0, 7, 11, 0, 11, 2},             // 0x39
	{0, 1, 5, 0, 5, 7, 0, 7, 8, 2, 3, 11},              // 0x3a
	{1, 5, 7, 1, 7, 11, 1, 11, 2},                      // 0x3b
	{1, 3, 11, 1, 11, 10, 5, 7, 8, 5, 8, 9},            // 0x3c
	{0, 9, 5, 0, 5, 7, 0, 7, 11, 0, 11, 10, 0, 10, 1},  // 0x3d
	{0, 3, 11, 0, 11, 10, 0, 10, 5, 0, 5, 7, 0, 7, 8},  // 0x3e
	{5, 7, 11, 5, 11, 10},                              // 0x3f
	{5, 10, 6},                                         // 0x40
	{0, 8, 3, 5, 10, 6},                                // 0x41
	{0, 1, 9, 5, 10, 6},                                // 0x42
	{1, 9, 8, 1, 8, 3, 5, 10, 6},                       // 0x43
	{1, 2, 6, 1, 6, 5},                                 // 0x44
	{0, 8, 3, 1, 2, 6, 1, 6, 5},                        // 0x45
	{0, 2, 6, 0, 6, 5, 0, 5, 9},                        // 0x46
	{2, 6, 5, 2, 5, 9, 2, 9, 8, 2, 8, 3},               // 0x47
	{2, 3, 11, 5, 10, 6},                               // 0x48
	{0, 8, 11, 0, 11, 2, 5, 10, 6},                     // 0x49
	{0, 1, 9, 2, 3, 11, 5, 10, 6},                      // 0x4a
	{1, 9, 8, 1, 8, 11, 1, 11, 2, 5, 10, 6},            // 0x4b
	{1, 3, 11, 1, 11, 6, 1, 6, 5},                      // 0x4c
	{0, 8, 11, 0, 11, 6, 0, 6, 5, 0, 5, 1},             // 0x4d
	{0, 3, 11, 0, 11, 6, 0, 6, 5, 0, 5, 9},             // 0x4e
	{5, 9, 8, 5, 8, 11, 5, 11, 6},                      // 0x4f
	{4, 7, 8, 5, 10, 6},                                // 0x50
	{0, 4, 7, 0, 7, 3, 5, 10, 6},                       // 0x51
	{0, 1, 9, 4, 7, 8, 5, 10, 6},                       // 0x52
	{1, 9, 4, 1, 4, 7, 1, 7, 3, 5, 10, 6},              // 0x53
	{1, 2, 6, 1, 6, 5, 4, 7, 8},                        // 0x54
	{0, 4, 7, 0, 7, 3, 1, 2, 6, 1, 6, 5},               // 0x55
	{0, 2, 6, 0, 6, 5, 0, 5, 9, 4, 7, 8},               // 0x56
	{2, 6, 5, 2, 5, 9, 2, 9, 4, 2, 4, 7, 2, 7, 3},      // 0x57
	{2, 3, 11, 4, 7, 8, 5, 10, 6},                      // 0x58
	{0, 4, 7, 0, 7, 11, 0, 11, 2, 5, 10, 6},            // 0x59
	{0, 1, 9, 2, 3, 11, 4, 7, 8, 5, 10, 6},             // 0x5a
	{1, 9, 4, 1, 4, 7, 1, 7, 11, 1, 11, 2, 5, 10, 6},   // 0x5b
	{1, 3, 11, 1, 11, 6, 1, 6, 5, 4, 7, 8},             // 0x5c
	{0, 4, 7, 0, 7, 11, 0, 11, 6, 0, 6, 5, 0, 5, 1},    // 0x5d
	{0, 3, 11, 0, 11, 6, 0, 6, 5, 0, 5, 9, 4, 7, 8},    // 0x5e
	{11, 6, 5, 11, 5, 9, 11, 9, 4, 11, 4, 7},           // 0x5f
	{4, 9, 10, 4, 10, 6},                               // 0x60
	{0, 8, 3, 4, 9, 10, 4, 10, 6},                      // 0x61
	{0, 1, 10, 0, 10, 6, 0, 6, 4},                      // 0x62
	{1, 10, 6, 1, 6, 4, 1, 4, 8, 1, 8, 3},              // 0x63
	{1, 2, 6, 1, 6, 4, 1, 4, 9},                        // 0x64
	{0, 8, 3, 1, 2, 6, 1, 6, 4, 1, 4, 9},               // 0x65
	{0, 2, 6, 0, 6, 4},                                 // 0x66
	{2, 6, 4, 2, 4, 8, 2, 8, 3},                        // 0x67
	{2, 3, 11, 4, 9, 10, 4, 10, 6},                     // 0x68
	{0, 8, 11, 0, 11, 2, 4, 9, 10, 4, 10, 6},           // 0x69
	{0, 1, 10, 0, 10, 6, 0, 6, 4, 2, 3, 11},            // 0x6a
	{1, 10, 6, 1, 6, 4, 1, 4, 8, 1, 8, 11, 1, 11, 2},   // 0x6b
	{1, 3, 11, 1, 11, 6, 1, 6, 4, 1, 4, 9},             // 0x6c
	{11, 6, 4, 11, 4, 9, 11, 9, 1, 11, 1, 0, 11, 0, 8}, // 0x6d
	{0, 3, 11, 0, 11, 6, 0, 6, 4},                      // 0x6e
	{4, 8, 11, 4, 11, 6},                               // 0x6f
	{6, 7, 8, 6, 8, 9, 6, 9, 10},                       // 0x70
	{0, 9, 10, 0, 10, 6, 0, 6, 7, 0, 7, 3},             // 0x71
	{0, 1, 10, 0, 10, 6, 0, 6, 7, 0, 7, 8},             // 0x72
	{1, 10, 6, 1, 6, 7, 1, 7, 3},                       // 0x73
	{1, 2, 6, 1, 6, 7, 1, 7, 8, 1, 8, 9},               // 0x74
	{9, 1, 2, 9, 2, 6, 9, 6, 7, 9, 7, 3, 9, 3, 0},      // 0x75
	{0, 2, 6, 0, 6, 7, 0, 7, 8},                        // 0x76
	{2, 6, 7, 2, 7, 3},                                 // 0x77
	{2, 3, 11, 6, 7, 8, 6, 8, 9, 6, 9, 10},             // 0x78
	{0, 9, 10, 0, 10, 6, 0, 6, 7, 0, 7, 11, 0, 11, 2},  // 0x79
	{0, 1, 10, 0, 10, 6, 0, 6, 7, 0, 7, 8, 2, 3, 11},   // 0x7a
	{1, 10, 6, 1, 6, 7, 1, 7, 11, 1, 11, 2},            // 0x7b
	{1, 3, 11, 1, 11, 6, 1, 6, 7, 1, 7, 8, 1, 8, 9},    // 0x7c
	{0, 9, 1, 6, 7, 11},                                // 0x7d
	{0, 3, 11, 0, 11, 6, 0, 6, 7, 0, 7, 8},             // 0x7e
	{6, 7, 11},                                         // 0x7f
	{6, 11, 7},                                         // 0x80
	{0, 8, 3, 6, 11, 7},                                // 0x81
	{0, 1, 9, 6, 11, 7},                                // 0x82
	{1, 9, 8, 1, 8, 3, 6, 11, 7},                       // 0x83
	{1, 2, 10, 6, 11, 7},                               // 0x84
	{0, 8, 3, 1, 2, 10, 6, 11, 7},                      // 0x85
	{0, 2, 10, 0, 10, 9, 6, 11, 7},                     // 0x86
	{2, 10, 9, 2, 9, 8, 2, 8, 3, 6, 11, 7},             // 0x87
	{2, 3, 7, 2, 7, 6},                                 // 0x88
	{0, 8, 7, 0, 7, 6, 0, 6, 2},                        // 0x89
	{0, 1, 9, 2, 3, 7, 2, 7, 6},                        // 0x8a
	{1, 9, 8, 1, 8, 7, 1, 7, 6, 1, 6, 2},               // 0x8b
	{1, 3, 7, 1, 7, 6, 1, 6, 10},                       // 0x8c
	{0, 8, 7, 0, 7, 6, 0, 6, 10, 0, 10, 1},             // 0x8d
	{0, 3, 7, 0, 7, 6, 0, 6, 10, 0, 10, 9},             // 0x8e
	{6, 10, 9, 6, 9, 8, 6, 8, 7},                       // 0x8f
	{4, 6, 11, 4, 11, 8},                               // 0x90
	{0, 4, 6, 0, 6, 11, 0, 11, 3},                      // 0x91
	{0, 1, 9, 4, 6, 11, 4, 11, 8},                      // 0x92
	{1, 9, 4, 1, 4, 6, 1, 6, 11, 1, 11, 3},             // 0x93
	{1, 2, 10, 4, 6, 11, 4, 11, 8},                     // 0x94
	{0, 4, 6, 0, 6, 11, 0, 11, 3, 1, 2, 10},            // 0x95
	{0, 2, 10, 0, 10, 9, 4, 6, 11, 4, 11, 8},           // 0x96
	{9, 4, 6, 9, 6, 11, 9, 11, 3, 9, 3, 2, 9, 2, 10},   // 0x97
	{2, 3, 8, 2, 8, 4, 2, 4, 6},                        // 0x98
	{0, 4, 6, 0, 6, 2},                                 // 0x99
	{0, 1, 9, 2, 3, 8, 2, 8, 4, 2, 4, 6},               // 0x9a
	{1, 9, 4, 1, 4, 6, 1, 6, 2},                        // 0x9b
	{1, 3, 8, 1, 8, 4, 1, 4, 6, 1, 6, 10},              // 0x9c
	{0, 4, 6, 0, 6, 10, 0, 10, 1},                      // 0x9d
	{3, 8, 4, 3, 4, 6, 3, 6, 10, 3, 10, 9, 3, 9, 0},    // 0x9e
	{4, 6, 10, 4, 10, 9},                               // 0x9f
	{4, 9, 5, 6, 11, 7},                                // 0xa0
	{0, 8, 3, 4, 9, 5, 6, 11, 7},                       // 0xa1
	{0, 1, 5, 0, 5, 4, 6, 11, 7},                       // 0xa2
	{1, 5, 4, 1, 4, 8, 1, 8, 3, 6, 11, 7},              // 0xa3
	{1, 2, 10, 4, 9, 5, 6, 11, 7},                      // 0xa4
	{0, 8, 3, 1, 2, 10, 4, 9, 5, 6, 11, 7},             // 0xa5
	{0, 2, 10, 0, 10, 5, 0, 5, 4, 6, 11, 7},            // 0xa6
	{2, 10, 5, 2, 5, 4, 2, 4, 8, 2, 8, 3, 6, 11, 7},    // 0xa7
	{2, 3, 7, 2, 7, 6, 4, 9, 5},                        // 0xa8
	{0, 8, 7, 0, 7, 6, 0, 6, 2, 4, 9, 5},               // 0xa9
	{0, 1, 5, 0, 5, 4, 2, 3, 7, 2, 7, 6},               // 0xaa
	{1, 5, 4, 1, 4, 8, 1, 8, 7, 1, 7, 6, 1, 6, 2},      // 0xab
	{1, 3, 7, 1, 7, 6, 1, 6, 10, 4, 9, 5},              // 0xac
	{0, 8, 7, 0, 7, 6, 0, 6, 10, 0, 10, 1, 4, 9, 5},    // 0xad
	{0, 3, 7, 0, 7, 6, 0, 6, 10, 0, 10, 5, 0, 5, 4},    // 0xae
	{8, 7, 6, 8, 6, 10, 8, 10, 5, 8, 5, 4},             // 0xaf
	{5, 6, 11, 5, 11, 8, 5, 8, 9},                      // 0xb0
	{0, 9, 5, 0, 5, 6, 0, 6, 11, 0, 11, 3},             // 0xb1
	{0, 1, 5, 0, 5, 6, 0, 6, 11, 0, 11, 8},             // 0xb2
	{1, 5, 6, 1, 6, 11, 1, 11, 3},                      // 0xb3
	{1, 2, 10, 5, 6, 11, 5, 11, 8, 5, 8, 9},            // 0xb4
	{0, 9, 5, 0, 5, 6, 0, 6, 11, 0, 11, 3, 1, 2, 10},   // 0xb5
	{0, 2, 10, 0, 10, 5, 0, 5, 6, 0, 6, 11, 0, 11, 8},  // 0xb6
	{5, 6, 11, 5, 11, 3, 5, 3, 2, 5, 2, 10},            // 0xb7
	{2, 3, 8, 2, 8, 9, 2, 9, 5, 2, 5, 6},               // 0xb8
	{0, 9, 5, 0, 5, 6, 0, 6, 2},                        // 0xb9
	{5, 6, 2, 5, 2, 3, 5, 3, 8, 5, 8, 0, 5, 0, 1},      // 0xba
	{1, 5, 6, 1, 6, 2},                                 // 0xbb
	{3, 8, 9, 3, 9, 5, 3, 5, 6, 3, 6, 10, 3, 10, 1},    // 0xbc
	{0, 9, 5, 0, 5, 6, 0, 6, 10, 0, 10, 1},             // 0xbd
	{0, 3, 8, 5, 6, 10},                                // 0xbe
	{5, 6, 10},                                         // 0xbf
	{5, 10, 11, 5, 11, 7},                              // 0xc0
	{0, 8, 3, 5, 10, 11, 5, 11, 7},                     // 0xc1
	{0, 1, 9, 5, 10, 11, 5, 11, 7},                     // 0xc2
	{1, 9, 8, 1, 8, 3, 5, 10, 11, 5, 11, 7},            // 0xc3
	{1, 2, 11, 1, 11, 7, 1, 7, 5},                      // 0xc4
	{0, 8, 3, 1, 2, 11, 1, 11, 7, 1, 7, 5},             // 0xc5
	{0, 2, 11, 0, 11, 7, 0, 7, 5, 0, 5, 9},             // 0xc6
	{2, 11, 7, 2, 7, 5, 2, 5, 9, 2, 9, 8, 2, 8, 3},     // 0xc7
	{2, 3, 7, 2, 7, 5, 2, 5, 10},                       // 0xc8
	{0, 8, 7, 0, 7, 5, 0, 5, 10, 0, 10, 2},             // 0xc9
	{0, 1, 9, 2, 3, 7, 2, 7, 5, 2, 5, 10},              // 0xca
	{8, 7, 5, 8, 5, 10, 8, 10, 2, 8, 2, 1, 8, 1, 9},    // 0xcb
	{1, 3, 7, 1, 7, 5},                                 // 0xcc
	{0, 8, 7, 0, 7, 5, 0, 5, 1},                        // 0xcd
	{0, 3, 7, 0, 7, 5, 0, 5, 9},                        // 0xce
	{5, 9, 8, 5, 8, 7},                                 // 0xcf
	{4, 5, 10, 4, 10, 11, 4, 11, 8},                    // 0xd0
	{0, 4, 5, 0, 5, 10, 0, 10, 11, 0, 11, 3},           // 0xd1
	{0, 1, 9, 4, 5, 10, 4, 10, 11, 4, 11, 8},           // 0xd2
	{4, 5, 10, 4, 10, 11, 4, 11, 3, 4, 3, 1, 4, 1, 9},  // 0xd3
	{1, 2, 11, 1, 11, 8, 1, 8, 4, 1, 4, 5},             // 0xd4
	{4, 5, 1, 4, 1, 2, 4, 2, 11, 4, 11, 3, 4, 3, 0},    // 0xd5
	{2, 11, 8, 2, 8, 4, 2, 4, 5, 2, 5, 9, 2, 9, 0},     // 0xd6
	{2, 11, 3, 4, 5, 9},                                // 0xd7
	{2, 3, 8, 2, 8, 4, 2, 4, 5, 2, 5, 10},              // 0xd8
	{0, 4, 5, 0, 5, 10, 0, 10, 2},                      // 0xd9
	{0, 1, 9, 2, 3, 8, 2, 8, 4, 2, 4, 5, 2, 5, 10},     // 0xda
	{4, 5, 10, 4, 10, 2, 4, 2, 1, 4, 1, 9},             // 0xdb
	{1, 3, 8, 1, 8, 4, 1, 4, 5},                        // 0xdc
	{0, 4, 5, 0, 5, 1},                                 // 0xdd
	{3, 8, 4, 3, 4, 5, 3, 5, 9, 3, 9, 0},               // 0xde
	{4, 5, 9},                                          // 0xdf
	{4, 9, 10, 4, 10, 11, 4, 11, 7},                    // 0xe0
	{0, 8, 3, 4, 9, 10, 4, 10, 11, 4, 11, 7},           // 0xe1
	{0, 1, 10, 0, 10, 11, 0, 11, 7, 0, 7, 4},           // 0xe2
	{1, 10, 11, 1, 11, 7, 1, 7, 4, 1, 4, 8, 1, 8, 3},   // 0xe3
	{1, 2, 11, 1, 11, 7, 1, 7, 4, 1, 4, 9},             // 0xe4
	{0, 8, 3, 1, 2, 11, 1, 11, 7, 1, 7, 4, 1, 4, 9},    // 0xe5
	{0, 2, 11, 0, 11, 7, 0, 7, 4},                      // 0xe6
	{2, 11, 7, 2, 7, 4, 2, 4, 8, 2, 8, 3},              // 0xe7
	{2, 3, 7, 2, 7, 4, 2, 4, 9, 2, 9, 10},              // 0xe8
	{7, 4, 9, 7, 9, 10, 7, 10, 2, 7, 2, 0, 7, 0, 8},    // 0xe9
	{10, 2, 3, 10, 3, 7, 10, 7, 4, 10, 4, 0, 10, 0, 1}, // 0xea
	{1, 10, 2, 4, 8, 7},                                // 0xeb
	{1, 3, 7, 1, 7, 4, 1, 4, 9},                        // 0xec
	{7, 4, 9, 7, 9, 1, 7, 1, 0, 7, 0, 8},               // 0xed
	{0, 3, 7, 0, 7, 4},                                 // 0xee
	{4, 8, 7},                                          // 0xef
	{8, 9, 10, 8, 10, 11},                              // 0xf0
	{0, 9, 10, 0, 10, 11, 0, 11, 3},                    // 0xf1
	{0, 1, 10, 0, 10, 11, 0, 11, 8},                    // 0xf2
	{1, 10, 11, 1, 11, 3},                              // 0xf3
	{1, 2, 11, 1, 11, 8, 1, 8, 9},                      // 0xf4
	{9, 1, 2, 9, 2, 11, 9, 11, 3, 9, 3, 0},             // 0xf5
	{0, 2, 11, 0, 11, 8},                               // 0xf6
	{2, 11, 3},                                         // 0xf7
	{2, 3, 8, 2, 8, 9, 2, 9, 10},                       // 0xf8
	{0, 9, 10, 0, 10, 2},                               // 0xf9
	{10, 2, 3, 10, 3, 8, 10, 8, 0, 10, 0, 1},           // 0xfa
	{1, 10, 2},                                         // 0xfb
	{1, 3, 8, 1, 8, 9},                                 // 0xfc
	{0, 9, 1},                                          // 0xfd
	{0, 3, 8},                                          // 0xfe
	{},                                                 // 0xff
}
