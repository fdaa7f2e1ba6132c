package classify

// DefaultTable returns the built-in scoring table. Weights follow a simple
// scheme: 5 for terms that pin down a category on their own, 3 for
// multi-word phrases and operation names, 2 for ordinary vocabulary, 1 for
// single symbols. A YAML profile can replace any category's pattern list.
func DefaultTable() Table {
	return Table{
		DataStructures: {
			{Match: "stack", Weight: 2}, {Match: "queue", Weight: 2},
			{Match: "array", Weight: 2}, {Match: "linked list", Weight: 2},
			{Match: "tree", Weight: 2}, {Match: "graph", Weight: 2},
			{Match: "hash", Weight: 2}, {Match: "heap", Weight: 2},
			{Match: "push", Weight: 3}, {Match: "pop", Weight: 3},
			{Match: "enqueue", Weight: 3}, {Match: "dequeue", Weight: 3},
			{Match: "insert", Weight: 3}, {Match: "delete", Weight: 3},
			{Match: "search", Weight: 3}, {Match: "traverse", Weight: 3},
		},
		Algorithms: {
			{Match: "algorithm", Weight: 2}, {Match: "sort", Weight: 2},
			{Match: "recursion", Weight: 2}, {Match: "iteration", Weight: 2},
			{Match: "divide", Weight: 2}, {Match: "conquer", Weight: 2},
			{Match: "bubble sort", Weight: 3}, {Match: "merge sort", Weight: 3},
			{Match: "quick sort", Weight: 3}, {Match: "binary search", Weight: 3},
			{Match: "linear search", Weight: 3},
		},
		Mathematics: {
			{Match: "equation", Weight: 5}, {Match: "function", Weight: 5},
			{Match: "derivative", Weight: 5}, {Match: "integral", Weight: 5},
			{Match: "formula", Weight: 2}, {Match: "matrix", Weight: 2},
			{Match: "graph", Weight: 2},
			{Match: "=", Weight: 1}, {Match: "+", Weight: 1},
			{Match: "^", Weight: 1}, {Match: "∫", Weight: 1},
			{Match: "∂", Weight: 1}, {Match: "Σ", Weight: 1},
		},
		Physics: {
			{Match: "kinematics", Weight: 5}, {Match: "dynamics", Weight: 5},
			{Match: "momentum", Weight: 5}, {Match: "velocity", Weight: 5},
			{Match: "acceleration", Weight: 5},
			{Match: "force", Weight: 2}, {Match: "motion", Weight: 2},
			{Match: "energy", Weight: 2}, {Match: "wave", Weight: 2},
			{Match: "mass", Weight: 2},
			{Match: "newton", Weight: 2}, {Match: "gravity", Weight: 2},
			{Match: "friction", Weight: 2},
			{Match: "m/s", Weight: 3}, {Match: "m/s²", Weight: 3},
		},
		Chemistry: {
			{Match: "reaction", Weight: 5}, {Match: "molecule", Weight: 5},
			{Match: "chemical", Weight: 5},
			{Match: "atom", Weight: 2}, {Match: "bond", Weight: 2},
			{Match: "element", Weight: 2}, {Match: "compound", Weight: 2},
			{Match: "H2O", Weight: 3}, {Match: "CO2", Weight: 3},
			{Match: "NaCl", Weight: 3}, {Match: "pH", Weight: 3},
			{Match: "acid", Weight: 3}, {Match: "base", Weight: 3},
			{Match: "equilibrium", Weight: 2}, {Match: "catalyst", Weight: 2},
			{Match: "oxidation", Weight: 2}, {Match: "reduction", Weight: 2},
		},
		Biology: {
			{Match: "cell", Weight: 5}, {Match: "dna", Weight: 5},
			{Match: "organism", Weight: 5}, {Match: "gene", Weight: 5},
			{Match: "evolution", Weight: 2}, {Match: "protein", Weight: 2},
			{Match: "enzyme", Weight: 2},
			{Match: "mitosis", Weight: 3}, {Match: "meiosis", Weight: 3},
			{Match: "photosynthesis", Weight: 3}, {Match: "respiration", Weight: 3},
			{Match: "nucleus", Weight: 2}, {Match: "membrane", Weight: 2},
			{Match: "chromosome", Weight: 2}, {Match: "inheritance", Weight: 2},
			{Match: "adaptation", Weight: 2},
		},
		Business: {
			{Match: "process", Weight: 2}, {Match: "workflow", Weight: 2},
			{Match: "strategy", Weight: 2}, {Match: "analysis", Weight: 2},
			{Match: "diagram", Weight: 2}, {Match: "flowchart", Weight: 2},
			{Match: "decision", Weight: 2}, {Match: "approval", Weight: 2},
			{Match: "review", Weight: 2}, {Match: "implementation", Weight: 2},
		},
	}
}
