package qunit

// resultsGlobal is the window property the bridge publishes results on.
const resultsGlobal = "__taskrunQUnit"

// bridgeScript runs before any page script. It intercepts the assignment of
// window.QUnit and registers log and done callbacks that collect results.
const bridgeScript = `(function () {
  var results = { done: false, failed: 0, passed: 0, total: 0, runtime: 0, failures: [] };
  window.` + resultsGlobal + ` = results;

  function dump(value) {
    try { return JSON.stringify(value); } catch (e) { return String(value); }
  }

  function hook(q) {
    if (!q || typeof q.log !== "function" || typeof q.done !== "function") {
      return;
    }
    q.log(function (d) {
      if (d.result) {
        return;
      }
      results.failures.push({
        module: d.module || "",
        name: d.name || "",
        message: d.message || "",
        actual: dump(d.actual),
        expected: dump(d.expected),
        source: d.source || ""
      });
    });
    q.done(function (d) {
      results.failed = d.failed;
      results.passed = d.passed;
      results.total = d.total;
      results.runtime = d.runtime;
      results.done = true;
    });
  }

  var current;
  Object.defineProperty(window, "QUnit", {
    configurable: true,
    get: function () { return current; },
    set: function (q) { current = q; hook(q); }
  });
})();`

// pollExpression is truthy once QUnit reported completion.
const pollExpression = `window.` + resultsGlobal + ` && window.` + resultsGlobal + `.done && window.` + resultsGlobal

// result mirrors the object published by bridgeScript.
type result struct {
	Done     bool      `json:"done"`
	Failed   int       `json:"failed"`
	Passed   int       `json:"passed"`
	Total    int       `json:"total"`
	Runtime  float64   `json:"runtime"`
	Failures []failure `json:"failures"`
}

type failure struct {
	Module   string `json:"module"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	Actual   string `json:"actual"`
	Expected string `json:"expected"`
	Source   string `json:"source"`
}
