// Package ctxflow provides the context variant of the pipeline engine: a
// chain of steps over a meta.Container instead of a bare value. Effect
// steps read the container and may write to its side channel; transform
// steps replace its primary value. The value type stays fixed along the
// chain, so the builder is a plain method chain.
//
//	p := ctxflow.Start[order]().
//	    Step(func(_ context.Context, c *meta.Container[order]) error {
//	        c.Set("source", "api")
//	        return nil
//	    }).
//	    Transform(func(_ context.Context, c *meta.Container[order]) (order, error) {
//	        o := c.Value()
//	        o.Total = o.Net + o.Tax
//	        return o, nil
//	    })
//	out, err := p.Run(ctx, in)
//
// Each Run wraps the input in a fresh container that is discarded when the
// run completes. There are no hooks, retries, or timeouts in this variant.
package ctxflow
