// SPDX-License-Identifier: MIT

package element

// table is indexed by atomic number. Index 0 is the dummy element "X".
var table = [...]Element{
	{Number: 0, Symbol: "X", CovalentRadius: 0.20, Color: [3]uint8{0xFF, 0x14, 0x93}},
	{Number: 1, Symbol: "H", CovalentRadius: 0.31, Color: [3]uint8{0xFF, 0xFF, 0xFF}},
	{Number: 2, Symbol: "He", CovalentRadius: 0.28, Color: [3]uint8{0xD9, 0xFF, 0xFF}},
	{Number: 3, Symbol: "Li", CovalentRadius: 1.28, Color: [3]uint8{0xCC, 0x80, 0xFF}},
	{Number: 4, Symbol: "Be", CovalentRadius: 0.96, Color: [3]uint8{0xC2, 0xFF, 0x00}},
	{Number: 5, Symbol: "B", CovalentRadius: 0.84, Color: [3]uint8{0xFF, 0xB5, 0xB5}},
	{Number: 6, Symbol: "C", CovalentRadius: 0.76, Color: [3]uint8{0x90, 0x90, 0x90}},
	{Number: 7, Symbol: "N", CovalentRadius: 0.71, Color: [3]uint8{0x30, 0x50, 0xF8}},
	{Number: 8, Symbol: "O", CovalentRadius: 0.66, Color: [3]uint8{0xFF, 0x0D, 0x0D}},
	{Number: 9, Symbol: "F", CovalentRadius: 0.57, Color: [3]uint8{0x90, 0xE0, 0x50}},
	{Number: 10, Symbol: "Ne", CovalentRadius: 0.58, Color: [3]uint8{0xB3, 0xE3, 0xF5}},
	{Number: 11, Symbol: "Na", CovalentRadius: 1.66, Color: [3]uint8{0xAB, 0x5C, 0xF2}},
	{Number: 12, Symbol: "Mg", CovalentRadius: 1.41, Color: [3]uint8{0x8A, 0xFF, 0x00}},
	{Number: 13, Symbol: "Al", CovalentRadius: 1.21, Color: [3]uint8{0xBF, 0xA6, 0xA6}},
	{Number: 14, Symbol: "Si", CovalentRadius: 1.11, Color: [3]uint8{0xF0, 0xC8, 0xA0}},
	{Number: 15, Symbol: "P", CovalentRadius: 1.07, Color: [3]uint8{0xFF, 0x80, 0x00}},
	{Number: 16, Symbol: "S", CovalentRadius: 1.05, Color: [3]uint8{0xFF, 0xFF, 0x30}},
	{Number: 17, Symbol: "Cl", CovalentRadius: 1.02, Color: [3]uint8{0x1F, 0xF0, 0x1F}},
	{Number: 18, Symbol: "Ar", CovalentRadius: 1.06, Color: [3]uint8{0x80, 0xD1, 0xE3}},
	{Number: 19, Symbol: "K", CovalentRadius: 2.03, Color: [3]uint8{0x8F, 0x40, 0xD4}},
	{Number: 20, Symbol: "Ca", CovalentRadius: 1.76, Color: [3]uint8{0x3D, 0xFF, 0x00}},
	{Number: 21, Symbol: "Sc", CovalentRadius: 1.70, Color: [3]uint8{0xE6, 0xE6, 0xE6}},
	{Number: 22, Symbol: "Ti", CovalentRadius: 1.60, Color: [3]uint8{0xBF, 0xC2, 0xC7}},
	{Number: 23, Symbol: "V", CovalentRadius: 1.53, Color: [3]uint8{0xA6, 0xA6, 0xAB}},
	{Number: 24, Symbol: "Cr", CovalentRadius: 1.39, Color: [3]uint8{0x8A, 0x99, 0xC7}},
	{Number: 25, Symbol: "Mn", CovalentRadius: 1.39, Color: [3]uint8{0x9C, 0x7A, 0xC7}},
	{Number: 26, Symbol: "Fe", CovalentRadius: 1.32, Color: [3]uint8{0xE0, 0x66, 0x33}},
	{Number: 27, Symbol: "Co", CovalentRadius: 1.26, Color: [3]uint8{0xF0, 0x90, 0xA0}},
	{Number: 28, Symbol: "Ni", CovalentRadius: 1.24, Color: [3]uint8{0x50, 0xD0, 0x50}},
	{Number: 29, Symbol: "Cu", CovalentRadius: 1.32, Color: [3]uint8{0xC8, 0x80, 0x33}},
	{Number: 30, Symbol: "Zn", CovalentRadius: 1.22, Color: [3]uint8{0x7D, 0x80, 0xB0}},
	{Number: 31, Symbol: "Ga", CovalentRadius: 1.22, Color: [3]uint8{0xC2, 0x8F, 0x8F}},
	{Number: 32, Symbol: "Ge", CovalentRadius: 1.20, Color: [3]uint8{0x66, 0x8F, 0x8F}},
	{Number: 33, Symbol: "As", CovalentRadius: 1.19, Color: [3]uint8{0xBD, 0x80, 0xE3}},
	{Number: 34, Symbol: "Se", CovalentRadius: 1.20, Color: [3]uint8{0xFF, 0xA1, 0x00}},
	{Number: 35, Symbol: "Br", CovalentRadius: 1.20, Color: [3]uint8{0xA6, 0x29, 0x29}},
	{Number: 36, Symbol: "Kr", CovalentRadius: 1.16, Color: [3]uint8{0x5C, 0xB8, 0xD1}},
	{Number: 37, Symbol: "Rb", CovalentRadius: 2.20, Color: [3]uint8{0x70, 0x2E, 0xB0}},
	{Number: 38, Symbol: "Sr", CovalentRadius: 1.95, Color: [3]uint8{0x00, 0xFF, 0x00}},
	{Number: 39, Symbol: "Y", CovalentRadius: 1.90, Color: [3]uint8{0x94, 0xFF, 0xFF}},
	{Number: 40, Symbol: "Zr", CovalentRadius: 1.75, Color: [3]uint8{0x94, 0xE0, 0xE0}},
	{Number: 41, Symbol: "Nb", CovalentRadius: 1.64, Color: [3]uint8{0x73, 0xC2, 0xC9}},
	{Number: 42, Symbol: "Mo", CovalentRadius: 1.54, Color: [3]uint8{0x54, 0xB5, 0xB5}},
	{Number: 43, Symbol: "Tc", CovalentRadius: 1.47, Color: [3]uint8{0x3B, 0x9E, 0x9E}},
	{Number: 44, Symbol: "Ru", CovalentRadius: 1.46, Color: [3]uint8{0x24, 0x8F, 0x8F}},
	{Number: 45, Symbol: "Rh", CovalentRadius: 1.42, Color: [3]uint8{0x0A, 0x7D, 0x8C}},
	{Number: 46, Symbol: "Pd", CovalentRadius: 1.39, Color: [3]uint8{0x00, 0x69, 0x85}},
	{Number: 47, Symbol: "Ag", CovalentRadius: 1.45, Color: [3]uint8{0xC0, 0xC0, 0xC0}},
	{Number: 48, Symbol: "Cd", CovalentRadius: 1.44, Color: [3]uint8{0xFF, 0xD9, 0x8F}},
	{Number: 49, Symbol: "In", CovalentRadius: 1.42, Color: [3]uint8{0xA6, 0x75, 0x73}},
	{Number: 50, Symbol: "Sn", CovalentRadius: 1.39, Color: [3]uint8{0x66, 0x80, 0x80}},
	{Number: 51, Symbol: "Sb", CovalentRadius: 1.39, Color: [3]uint8{0x9E, 0x63, 0xB5}},
	{Number: 52, Symbol: "Te", CovalentRadius: 1.38, Color: [3]uint8{0xD4, 0x7A, 0x00}},
	{Number: 53, Symbol: "I", CovalentRadius: 1.39, Color: [3]uint8{0x94, 0x00, 0x94}},
	{Number: 54, Symbol: "Xe", CovalentRadius: 1.40, Color: [3]uint8{0x42, 0x9E, 0xB0}},
	{Number: 55, Symbol: "Cs", CovalentRadius: 2.44, Color: [3]uint8{0x57, 0x17, 0x8F}},
	{Number: 56, Symbol: "Ba", CovalentRadius: 2.15, Color: [3]uint8{0x00, 0xC9, 0x00}},
	{Number: 57, Symbol: "La", CovalentRadius: 2.07, Color: [3]uint8{0x70, 0xD4, 0xFF}},
	{Number: 58, Symbol: "Ce", CovalentRadius: 2.04, Color: [3]uint8{0xFF, 0xFF, 0xC7}},
	{Number: 59, Symbol: "Pr", CovalentRadius: 2.03, Color: [3]uint8{0xD9, 0xFF, 0xC7}},
	{Number: 60, Symbol: "Nd", CovalentRadius: 2.01, Color: [3]uint8{0xC7, 0xFF, 0xC7}},
	{Number: 61, Symbol: "Pm", CovalentRadius: 1.99, Color: [3]uint8{0xA3, 0xFF, 0xC7}},
	{Number: 62, Symbol: "Sm", CovalentRadius: 1.98, Color: [3]uint8{0x8F, 0xFF, 0xC7}},
	{Number: 63, Symbol: "Eu", CovalentRadius: 1.98, Color: [3]uint8{0x61, 0xFF, 0xC7}},
	{Number: 64, Symbol: "Gd", CovalentRadius: 1.96, Color: [3]uint8{0x45, 0xFF, 0xC7}},
	{Number: 65, Symbol: "Tb", CovalentRadius: 1.94, Color: [3]uint8{0x30, 0xFF, 0xC7}},
	{Number: 66, Symbol: "Dy", CovalentRadius: 1.92, Color: [3]uint8{0x1F, 0xFF, 0xC7}},
	{Number: 67, Symbol: "Ho", CovalentRadius: 1.92, Color: [3]uint8{0x00, 0xFF, 0x9C}},
	{Number: 68, Symbol: "Er", CovalentRadius: 1.89, Color: [3]uint8{0x00, 0xE6, 0x75}},
	{Number: 69, Symbol: "Tm", CovalentRadius: 1.90, Color: [3]uint8{0x00, 0xD4, 0x52}},
	{Number: 70, Symbol: "Yb", CovalentRadius: 1.87, Color: [3]uint8{0x00, 0xBF, 0x38}},
	{Number: 71, Symbol: "Lu", CovalentRadius: 1.87, Color: [3]uint8{0x00, 0xAB, 0x24}},
	{Number: 72, Symbol: "Hf", CovalentRadius: 1.75, Color: [3]uint8{0x4D, 0xC2, 0xFF}},
	{Number: 73, Symbol: "Ta", CovalentRadius: 1.70, Color: [3]uint8{0x4D, 0xA6, 0xFF}},
	{Number: 74, Symbol: "W", CovalentRadius: 1.62, Color: [3]uint8{0x21, 0x94, 0xD6}},
	{Number: 75, Symbol: "Re", CovalentRadius: 1.51, Color: [3]uint8{0x26, 0x7D, 0xAB}},
	{Number: 76, Symbol: "Os", CovalentRadius: 1.44, Color: [3]uint8{0x26, 0x66, 0x96}},
	{Number: 77, Symbol: "Ir", CovalentRadius: 1.41, Color: [3]uint8{0x17, 0x54, 0x87}},
	{Number: 78, Symbol: "Pt", CovalentRadius: 1.36, Color: [3]uint8{0xD0, 0xD0, 0xE0}},
	{Number: 79, Symbol: "Au", CovalentRadius: 1.36, Color: [3]uint8{0xFF, 0xD1, 0x23}},
	{Number: 80, Symbol: "Hg", CovalentRadius: 1.32, Color: [3]uint8{0xB8, 0xB8, 0xD0}},
	{Number: 81, Symbol: "Tl", CovalentRadius: 1.45, Color: [3]uint8{0xA6, 0x54, 0x4D}},
	{Number: 82, Symbol: "Pb", CovalentRadius: 1.46, Color: [3]uint8{0x57, 0x59, 0x61}},
	{Number: 83, Symbol: "Bi", CovalentRadius: 1.48, Color: [3]uint8{0x9E, 0x4F, 0xB5}},
	{Number: 84, Symbol: "Po", CovalentRadius: 1.40, Color: [3]uint8{0xAB, 0x5C, 0x00}},
	{Number: 85, Symbol: "At", CovalentRadius: 1.50, Color: [3]uint8{0x75, 0x4F, 0x45}},
	{Number: 86, Symbol: "Rn", CovalentRadius: 1.50, Color: [3]uint8{0x42, 0x82, 0x96}},
	{Number: 87, Symbol: "Fr", CovalentRadius: 2.60, Color: [3]uint8{0x42, 0x00, 0x66}},
	{Number: 88, Symbol: "Ra", CovalentRadius: 2.21, Color: [3]uint8{0x00, 0x7D, 0x00}},
	{Number: 89, Symbol: "Ac", CovalentRadius: 2.15, Color: [3]uint8{0x70, 0xAB, 0xFA}},
	{Number: 90, Symbol: "Th", CovalentRadius: 2.06, Color: [3]uint8{0x00, 0xBA, 0xFF}},
	{Number: 91, Symbol: "Pa", CovalentRadius: 2.00, Color: [3]uint8{0x00, 0xA1, 0xFF}},
	{Number: 92, Symbol: "U", CovalentRadius: 1.96, Color: [3]uint8{0x00, 0x8F, 0xFF}},
	{Number: 93, Symbol: "Np", CovalentRadius: 1.90, Color: [3]uint8{0x00, 0x80, 0xFF}},
	{Number: 94, Symbol: "Pu", CovalentRadius: 1.87, Color: [3]uint8{0x00, 0x6B, 0xFF}},
	{Number: 95, Symbol: "Am", CovalentRadius: 1.80, Color: [3]uint8{0x54, 0x5C, 0xF2}},
	{Number: 96, Symbol: "Cm", CovalentRadius: 1.69, Color: [3]uint8{0x78, 0x5C, 0xE3}},
}
