package units

// Amount of substance.
var Moles = Base(Substance)
