package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// opBuilder turns one regex match into an operation. Returning ok=false
// discards the match (empty value after sanitizing, unparsable number).
type opBuilder func(groups []string) (Operation, bool)

type rule struct {
	re    *regexp.Regexp
	build opBuilder
}

// Extract parses note text into an ordered, homogeneous operation list.
// The structure kind is inferred from the text first; only the rules of that
// kind are applied, so a note mentioning both "stack" and "queue" yields a
// single consistent animation. Matches are ordered by their position in the
// source text, not by which rule found them. An empty list means the note
// names a structure but no recognizable steps; callers decide whether to
// fall back to SeedSequence.
func Extract(text string) (Kind, []Operation) {
	kind := InferKind(text)
	ops := applyRules(text, rulesFor(kind))

	if len(ops) == 0 && (kind == KindStack || kind == KindQueue) {
		ops = fromListedLines(text, kind)
	}
	return kind, ops
}

// InferKind picks the structure kind via a priority-ordered, mutually
// exclusive keyword test: stack, queue, tree, linked list, graph, hash
// table, array. The first match wins; with no structure noun at all, verb
// hints decide, defaulting to stack.
func InferKind(text string) Kind {
	lower := strings.ToLower(text)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("stack"):
		return KindStack
	case has("queue"):
		return KindQueue
	case has("binary search tree", "binary tree", "bst", "tree", "struct node"):
		return KindTree
	case has("linked list", "linkedlist", "list"):
		return KindList
	case has("graph"):
		return KindGraph
	case has("hash table", "hashtable", "hash"):
		return KindHash
	case has("array"):
		return KindArray
	case has("enqueue", "dequeue", "fifo"):
		return KindQueue
	case has("addnode", "add node", "addedge", "add edge", "dfs", "bfs"):
		return KindGraph
	default:
		return KindStack
	}
}

type candidate struct {
	start, end int
	op         Operation
}

// applyRules runs every rule over the text and merges the matches back into
// source order. Overlapping matches (several rules recognizing the same call)
// keep only the earliest, longest one.
func applyRules(text string, rules []rule) []Operation {
	var cands []candidate
	for _, r := range rules {
		for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
			groups := make([]string, 0, len(loc)/2)
			for g := 0; g < len(loc); g += 2 {
				if loc[g] < 0 {
					groups = append(groups, "")
				} else {
					groups = append(groups, text[loc[g]:loc[g+1]])
				}
			}
			if op, ok := r.build(groups); ok {
				cands = append(cands, candidate{start: loc[0], end: loc[1], op: op})
			}
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		return cands[i].end > cands[j].end
	})

	var ops []Operation
	lastEnd := -1
	for _, c := range cands {
		if c.start < lastEnd {
			continue
		}
		ops = append(ops, c.op)
		lastEnd = c.end
	}
	return ops
}

// sanitizeValue trims a captured token and strips quotes, brackets, braces
// and control characters. Stored values never contain ()[]{}"'.
func sanitizeValue(v string) string {
	v = strings.TrimSpace(v)
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '[', ']', '{', '}', '"', '\'':
			return -1
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, v)
}

func valueOp(code OpCode) opBuilder {
	return func(groups []string) (Operation, bool) {
		v := sanitizeValue(groups[1])
		if v == "" {
			return Operation{}, false
		}
		return Operation{Code: code, Value: v}, true
	}
}

func bareOp(code OpCode) opBuilder {
	return func([]string) (Operation, bool) {
		return Operation{Code: code}, true
	}
}

var stackRules = []rule{
	{regexp.MustCompile(`(?i)(?:stack\.append|\bpush)\s*\(\s*["']?([A-Za-z0-9]+)["']?\s*\)`), valueOp(OpPush)},
	{regexp.MustCompile(`(?i)\badd\s+([A-Za-z0-9]+)\s+to\s+(?:the\s+)?stack`), valueOp(OpPush)},
	{regexp.MustCompile(`(?i)\binsert\s+([A-Za-z0-9]+)\s+into\s+(?:the\s+)?stack`), valueOp(OpPush)},
	{regexp.MustCompile(`(?i)\bpush\s+([A-Za-z0-9]+)\b`), valueOp(OpPush)},
	{regexp.MustCompile(`(?i)\bpop\s*\(\s*\)`), bareOp(OpPop)},
	{regexp.MustCompile(`(?i)\bremove\s+from\s+(?:the\s+)?stack`), bareOp(OpPop)},
	{regexp.MustCompile(`(?i)\bpop\s+(?:an?\s+|the\s+(?:top\s+)?)?element`), bareOp(OpPop)},
}

var queueRules = []rule{
	{regexp.MustCompile(`(?i)(?:queue\.append|\benqueue)\s*\(\s*["']?([A-Za-z0-9]+)["']?\s*\)`), valueOp(OpEnqueue)},
	{regexp.MustCompile(`(?i)\badd\s+([A-Za-z0-9]+)\s+to\s+(?:the\s+)?queue`), valueOp(OpEnqueue)},
	{regexp.MustCompile(`(?i)\binsert\s+([A-Za-z0-9]+)\s+into\s+(?:the\s+)?queue`), valueOp(OpEnqueue)},
	{regexp.MustCompile(`(?i)\benqueue\s+([A-Za-z0-9]+)\b`), valueOp(OpEnqueue)},
	{regexp.MustCompile(`(?i)(?:\bdequeue|queue\.popleft)\s*\(\s*\)`), bareOp(OpDequeue)},
	{regexp.MustCompile(`(?i)\bremove\s+from\s+(?:the\s+)?queue`), bareOp(OpDequeue)},
	{regexp.MustCompile(`(?i)\bdequeue\s+(?:an?\s+)?element`), bareOp(OpDequeue)},
}

func treeInsertOp(groups []string) (Operation, bool) {
	v := sanitizeValue(groups[1])
	if _, err := strconv.Atoi(v); err != nil {
		return Operation{}, false
	}
	return Operation{Code: OpTreeInsert, Value: v}, true
}

var treeRules = []rule{
	{regexp.MustCompile(`(?i)\binsert\s*\(\s*(\d+)\s*\)`), treeInsertOp},
	{regexp.MustCompile(`(?i)\binsert\s*\([^,()]*,\s*(\d+)\s*\)`), treeInsertOp},
	{regexp.MustCompile(`(?i)\bcreateNode\s*\(\s*(\d+)\s*\)`), treeInsertOp},
	{regexp.MustCompile(`(?i)\bnewNode\b[^\n]*?=[^\n]*?(\d+)`), treeInsertOp},
	{regexp.MustCompile(`(?i)\bdata\s*=\s*(\d+)`), treeInsertOp},
}

var listRules = []rule{
	{regexp.MustCompile(`(?i)\binsert\s*\(?\s*([A-Za-z0-9_]+)\s*\)?`), valueOp(OpListInsertHead)},
	{regexp.MustCompile(`(?i)\bappend\s*\(?\s*([A-Za-z0-9_]+)\s*\)?`), valueOp(OpListAppendTail)},
	{regexp.MustCompile(`(?i)\bdelete\s*\(\s*\)`), bareOp(OpListDeleteHead)},
}

func graphEdgeOp(groups []string) (Operation, bool) {
	from := sanitizeValue(groups[1])
	to := sanitizeValue(groups[2])
	if from == "" || to == "" {
		return Operation{}, false
	}
	weight := 1
	if groups[3] != "" {
		if w, err := strconv.Atoi(groups[3]); err == nil {
			weight = w
		}
	}
	return Operation{Code: OpGraphAddEdge, From: from, To: to, Weight: weight}, true
}

func graphTraverseOp(kind TraverseKind) opBuilder {
	return func([]string) (Operation, bool) {
		// The start vertex is not named in prose like "run DFS"; the
		// simulator substitutes the first vertex when "A" is absent.
		return Operation{Code: OpGraphTraverse, Value: "A", Traversal: kind}, true
	}
}

var graphRules = []rule{
	{regexp.MustCompile(`(?i)\badd[_ ]?node\s*\(?\s*([A-Za-z0-9_]+)\s*\)?`), valueOp(OpGraphAddNode)},
	{regexp.MustCompile(`(?i)\badd[_ ]?edge\s*\(?\s*([A-Za-z0-9_]+)\s*,\s*([A-Za-z0-9_]+)\s*(?:,\s*(\d+)\s*)?\)?`), graphEdgeOp},
	{regexp.MustCompile(`(?i)\bdfs\b|\bdepth[- ]?first\b`), graphTraverseOp(TraverseDFS)},
	{regexp.MustCompile(`(?i)\bbfs\b|\bbreadth[- ]?first\b`), graphTraverseOp(TraverseBFS)},
}

var hashRules = []rule{
	{regexp.MustCompile(`(?i)\binsert\s*\(?\s*([A-Za-z0-9_]+)\s*\)?`), valueOp(OpHashInsert)},
	{regexp.MustCompile(`(?i)\bsearch\s*\(?\s*([A-Za-z0-9_]+)\s*\)?`), valueOp(OpHashSearch)},
	{regexp.MustCompile(`(?i)\bdelete\s*\(?\s*([A-Za-z0-9_]+)\s*\)?`), valueOp(OpHashDelete)},
}

func arrayInsertOp(groups []string) (Operation, bool) {
	v := sanitizeValue(groups[1])
	if v == "" {
		return Operation{}, false
	}
	idx := 0
	if groups[2] != "" {
		if i, err := strconv.Atoi(groups[2]); err == nil {
			idx = i
		}
	}
	return Operation{Code: OpArrayInsert, Value: v, Index: idx}, true
}

func arrayDeleteOp(groups []string) (Operation, bool) {
	idx := 0
	if groups[1] != "" {
		if i, err := strconv.Atoi(groups[1]); err == nil {
			idx = i
		}
	}
	return Operation{Code: OpArrayDelete, Index: idx}, true
}

var arrayRules = []rule{
	{regexp.MustCompile(`(?i)\binsert\s*\(\s*(\d+)\s*(?:,\s*(\d+))?\s*\)`), arrayInsertOp},
	{regexp.MustCompile(`(?i)\bappend\s*\(\s*(\d+)\s*\)`), valueOp(OpArrayAppend)},
	{regexp.MustCompile(`(?i)\bdelete\s*\(\s*(\d+)?\s*\)`), arrayDeleteOp},
}

func rulesFor(kind Kind) []rule {
	switch kind {
	case KindStack:
		return stackRules
	case KindQueue:
		return queueRules
	case KindTree:
		return treeRules
	case KindList:
		return listRules
	case KindGraph:
		return graphRules
	case KindHash:
		return hashRules
	case KindArray:
		return arrayRules
	}
	return nil
}

var (
	listedLineRe = regexp.MustCompile(`(?m)^\s*(?:\d+[.)]|[-*•])\s*(.+)$`)
	listedAddRe  = regexp.MustCompile(`(?i)(?:push|add|insert|put)\b[^A-Za-z0-9]*([A-Za-z0-9]+)`)
	listedDropRe = regexp.MustCompile(`(?i)\b(?:pop|remove|delete|take|dequeue)\b`)
)

// fromListedLines recovers operations from numbered or bulleted step lists
// ("1. Add 5", "- remove the top element") when the call-style and prose
// rules found nothing.
func fromListedLines(text string, kind Kind) []Operation {
	var ops []Operation
	for _, m := range listedLineRe.FindAllStringSubmatch(text, -1) {
		line := m[1]
		if am := listedAddRe.FindStringSubmatch(line); am != nil {
			v := sanitizeValue(am[1])
			if v == "" {
				continue
			}
			if kind == KindQueue {
				ops = append(ops, Operation{Code: OpEnqueue, Value: v})
			} else {
				ops = append(ops, Operation{Code: OpPush, Value: v})
			}
		} else if listedDropRe.MatchString(line) {
			if kind == KindQueue {
				ops = append(ops, Operation{Code: OpDequeue})
			} else {
				ops = append(ops, Operation{Code: OpPop})
			}
		}
	}
	return ops
}
